package db

import "encoding/json"

// Tag, assignee and dependency lists are stored as JSON text columns; an
// empty list is stored as [] so the column is never NULL.

func encodeStringList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func decodeStringList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func encodeIDList(values []uint64) ([]byte, error) {
	if values == nil {
		values = []uint64{}
	}
	return json.Marshal(values)
}

func decodeIDList(data []byte) ([]uint64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var values []uint64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
