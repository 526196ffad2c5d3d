package goodmoney

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// encode marshals one snapshot slot into its persisted JSON payload. It
// returns nil on failure; the store logs and keeps the in-memory state.
func (s *Store) encode(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Msg("could not encode snapshot slot")
		return nil
	}
	return data
}

// decodeSlot unmarshals a persisted payload into a fresh value of T.
func decodeSlot[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("could not decode payload: %w", err)
	}
	return v, nil
}
