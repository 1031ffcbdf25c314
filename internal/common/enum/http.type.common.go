package enum

type HTTPContentTypeEnum string

const (
	ApplicationJSON HTTPContentTypeEnum = "application/json"
	MultipartForm   HTTPContentTypeEnum = "multipart/form-data"
)

func (e HTTPContentTypeEnum) ToString() string {
	switch e {
	case ApplicationJSON:
		return "application/json"
	case MultipartForm:
		return "multipart/form-data"
	default:
		return ""
	}
}
