package messages

const (
	OperationWasSuccessful = "operation was successful"
	SomethingWentWrong     = "something went wrong, try again"
	NotFound               = "resource not found"

	// auth
	UsernameOrPasswordInvalid = "Username or password invalid"
	MissingCredentials        = "Username and password are required"
	TooManyLoginAttempts      = "Too many login attempts, try again later"
	LoginSuccessful           = "Logged in successfully!"
	LogoutSuccessful          = "Logged out successfully"
	NotLoggedIn               = "You must be logged in to do that"
	NotBookOwner              = "You do not own this book"

	// books
	MissingRequiredFields  = "Missing required fields"
	BookNotFound           = "Book not found"
	BookCreated            = "Book created successfully!"
	BookUpdated            = "Book updated successfully"
	BookDeleted            = "Book deleted successfully"
	AuthorNotFoundCreateIt = "Author not found, create the author first"
	FailedToFetchBooks     = "Failed to fetch books"
	FailedToInsertBook     = "Failed to insert book"
	FailedToUpdateBook     = "Failed to update book"
	FailedToDeleteBook     = "Failed to delete book"

	// authors
	AuthorNotFound        = "Author not found"
	AuthorCreated         = "Author created successfully!"
	AuthorDeleted         = "Author deleted successfully"
	AuthorAlreadyOwned    = "You already have an author record"
	AuthorHasBooks        = "Please delete the books written by this author first before deleting the author."
	BooksNotFoundByAuthor = "Books not found for this author"
	FailedToFetchAuthors  = "Failed to fetch authors"
	FailedToInsertAuthor  = "Failed to insert author"
	FailedToDeleteAuthor  = "Failed to delete author"

	// users
	FailedToFetchUsers = "Failed to fetch users"
)
