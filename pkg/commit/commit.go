package commit

// Commit is the structured message returned by the model.
type Commit struct {
	// Title is the short summary line.
	Title string `json:"title" description:"The title of the commit."`
	// Description is an exhaustive explanation of the change.
	Description string `json:"description" description:"An exhaustive description of the changes."`
}

// String returns the message in the form passed to git: title, blank line,
// description.
func (c Commit) String() string {
	return c.Title + "\n\n" + c.Description
}
