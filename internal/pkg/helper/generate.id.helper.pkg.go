package helper

import gonanoid "github.com/matoous/go-nanoid/v2"

const urlAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// GenerateID returns a short url-safe id used to tag an upload batch in the logs.
func GenerateID() (string, error) {
	id, err := gonanoid.Generate(urlAlphabet, 12)
	if err != nil {
		return "", err
	}
	return id, nil
}
