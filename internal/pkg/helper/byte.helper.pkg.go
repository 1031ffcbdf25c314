package helper

import "encoding/json"

func ByteToStruct[I any](payload []byte, result *I) error {
	err := json.Unmarshal(payload, result)
	if err != nil {
		return err
	}
	return nil
}
