package domain

// File holds the metadata of a file stored in the folder. ID is the
// identifier the storage platform assigned at creation time; names are not
// guaranteed unique within a folder.
type File struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
}

// Blob is the unit of data handed to a Folder for file creation: content
// bytes plus the MIME type they should be stored under.
type Blob struct {
	Name        string
	ContentType string
	Content     []byte
}
