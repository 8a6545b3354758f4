package splitapi

import "encoding/json"

// JSONCodec serializes the plain Go messages of this package for Connect.
// It is registered under the "json" name so requests sent as application/json
// (and the Connect clients built by splitapiconnect) use it.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
