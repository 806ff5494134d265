package utils

import (
	"encoding/json"
	"errors"
	"io"
)

/*
DecodeStrict decodifica JSON rejeitando chaves desconhecidas
e garantindo que exista exatamente UM valor JSON.
*/
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		// ex.: json: unknown field "foo"
		return err
	}
	// Garante que não tenha lixo após o valor JSON
	if dec.More() {
		return errors.New("unexpected additional JSON content")
	}
	return nil
}
