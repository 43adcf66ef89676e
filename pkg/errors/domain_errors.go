package errors

var (
	// Feed resolution
	ErrUnknownAuthor     = NotFound("author does not exist")
	ErrUnknownClub       = NotFound("club does not exist")
	ErrForbidden         = Forbidden("you are not a member of this club")
	ErrInvalidFilterName = InvalidArg("filter name must be author or clubName")

	// Clubs
	ErrClubNameTaken    = AlreadyExists("a club with this name already exists")
	ErrInvalidClubName  = InvalidArg("club name must be a nonempty alphanumeric string")
	ErrReservedClubName = InvalidArg("Main is reserved for the home feed")
	ErrInvalidPrivacy   = InvalidArg("club privacy must be either secret, private, or public")
	ErrMissingClubRules = InvalidArg("club must have rules")
	ErrNotClubOwner     = Forbidden("you are not the owner of this club")
	ErrAlreadyMember    = AlreadyExists("user is already a member of this club")
	ErrNoPendingRequest = FailedPrecondition("user has no pending request for this club")
	ErrOwnerCannotLeave = FailedPrecondition("the owner cannot leave their club")

	// Freets
	ErrFreetNotFound  = NotFound("freet does not exist")
	ErrEmptyFreet     = InvalidArg("freet content must be at least one character long")
	ErrFreetTooLong   = InvalidArg("freet content must be no more than 140 characters")
	ErrNotFreetAuthor = Forbidden("cannot modify other users' freets")

	// Users
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidUsername    = InvalidArg("username must be 3 to 32 lowercase letters, digits or underscores")
	ErrUsernameTaken      = AlreadyExists("an account with this username already exists")
	ErrMissingDisplayName = InvalidArg("display name is required")

	// Discourses
	ErrDiscourseNotFound = NotFound("this discourse does not exist")
	ErrTooFewClubs       = InvalidArg("you must include at least two clubs in your discourse")
	ErrUnknownClubs      = InvalidArg("one or more of the clubs you entered does not exist")
	ErrEndDateInPast     = InvalidArg("the end date you entered is in the past")
	ErrNoEditPermission  = Forbidden("you do not have permission to edit this discourse")
)
