package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeZip         = "application/zip"
	MimeOctetStream = "application/octet-stream"
)

// DefaultExamTotalMarks and DefaultExamDuration are the paper-level defaults
// applied when the authoring teacher leaves them unset.
const (
	DefaultExamTotalMarks = 70
	DefaultExamDuration   = "3 Hours"
)
