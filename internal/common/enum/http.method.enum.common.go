package enum

type HTTPMethodEnum string

const (
	GET  HTTPMethodEnum = "GET"
	POST HTTPMethodEnum = "POST"
)

func (e HTTPMethodEnum) ToString() string {
	switch e {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return ""
	}
}
