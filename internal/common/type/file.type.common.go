package types

type BufferedFile struct {
	MediaType    string `json:"mediaType" validate:"required"`
	OriginalName string `json:"originalName" validate:"required"`
	Encoding     string `json:"encoding"`
	MimeType     string `json:"mimetype"`
	Size         int    `json:"size"`
	Buffer       []byte `json:"-"`
}

type BufferedFiles map[string][]BufferedFile

func (b BufferedFiles) Get(field string) []BufferedFile {
	if b == nil {
		return nil
	}
	return b[field]
}
