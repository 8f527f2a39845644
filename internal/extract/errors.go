package extract

// Kind classifies an extraction failure.
type Kind string

const (
	KindScannedPDF  Kind = "scanned_pdf"
	KindMalformed   Kind = "malformed"
	KindUndecodable Kind = "undecodable"
	KindEngine      Kind = "ocr_engine"
)

// ScannedPDFMessage is returned for PDFs whose pages carry no text layer.
const ScannedPDFMessage = "This looks like a scanned PDF with no text layer. Please take a screenshot and upload it as an image (JPG/PNG)."

// Error is the only error type returned by Extract. Message is safe to show
// to the user as is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failure(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: "Error: " + err.Error(), Err: err}
}
