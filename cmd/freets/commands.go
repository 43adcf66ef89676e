package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/robertwachen/fritterfrontend/internal/feed"
	"github.com/robertwachen/fritterfrontend/internal/filterstate"
)

func newRootCmd(open opener) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "freets",
		Short:        "Browse the freets feed from the terminal",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configName, "config", "config", "config file name, without extension")
	rootCmd.PersistentFlags().StringVar(&opts.feedURL, "url", "", "feed server base URL (overrides client.feedurl)")
	rootCmd.PersistentFlags().StringVar(&opts.userID, "user", "", "viewer user id (overrides client.userid)")

	// run opens a session for the command and always closes it.
	run := func(fn func(cmd *cobra.Command, args []string, m *filterstate.Manager) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()
			return fn(cmd, args, s.manager)
		}
	}

	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage the saved feed filters",
	}
	filterSetCmd := &cobra.Command{
		Use:   "set <author|clubName> [value]",
		Short: "Set a filter; an empty value or clubName Main removes it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: run(func(cmd *cobra.Command, args []string, m *filterstate.Manager) error {
			value := ""
			if len(args) == 2 {
				value = args[1]
			}
			if err := m.SetFilter(cmd.Context(), args[0], value); err != nil {
				return err
			}
			printFilters(cmd.OutOrStdout(), m.Filters())
			return nil
		}),
	}
	filterClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every filter and return to the home feed",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, m *filterstate.Manager) error {
			if err := m.ClearAll(cmd.Context()); err != nil {
				return err
			}
			printFilters(cmd.OutOrStdout(), m.Filters())
			return nil
		}),
	}
	filterShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved filters and their query string",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, m *filterstate.Manager) error {
			printFilters(cmd.OutOrStdout(), m.Filters())
			return nil
		}),
	}
	filterCmd.AddCommand(filterSetCmd, filterClearCmd, filterShowCmd)

	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch and print the feed for the saved filters",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, m *filterstate.Manager) error {
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			printPosts(cmd.OutOrStdout(), m.Posts())
			return nil
		}),
	}

	rootCmd.AddCommand(filterCmd, feedCmd)
	return rootCmd
}

func printFilters(w io.Writer, fs feed.FilterSet) {
	if fs.Len() == 0 {
		fmt.Fprintln(w, "no filters (home feed)")
		return
	}
	if a := fs.Author(); a != "" {
		fmt.Fprintf(w, "%s = %s\n", feed.FilterAuthor, a)
	}
	if c := fs.ClubName(); c != "" {
		fmt.Fprintf(w, "%s = %s\n", feed.FilterClubName, c)
	}
	fmt.Fprintf(w, "query: %s\n", fs.Encode())
}

func printPosts(w io.Writer, posts []feed.FreetResponse) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "no freets")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range posts {
		fmt.Fprintf(tw, "@%s\t%s\t%s\n", p.Author, p.DateModified.Format(time.DateTime), p.Content)
	}
	tw.Flush()
}
