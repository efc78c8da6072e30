package model

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

// FilterBy is an exact-match predicate on list-shaped results, mapping a field name to the value it must hold.
// A nil FilterBy means no filtering was requested.
//
// Values compare as JSON values: numbers match numbers and strings match strings, never each other.
// decimal.Decimal values are compared as JSON numbers.
type FilterBy map[string]interface{}

// EmptyMatch returns the sentinel result of a filter that found nothing: a list holding a single empty record
func EmptyMatch() []interface{} {
	return []interface{}{map[string]interface{}{}}
}

// IsEmptyMatch returns true if v is the sentinel returned by EmptyMatch
func IsEmptyMatch(v interface{}) bool {
	list, ok := v.([]interface{})
	if !ok || len(list) != 1 {
		return false
	}
	record, ok := list[0].(map[string]interface{})
	return ok && len(record) == 0
}

// ToRecords converts a decoded JSON value into the sequence of records a filter runs over.
// Arrays are used as-is, any other value is treated as a sequence of one.
func ToRecords(v interface{}) []interface{} {
	if list, ok := v.([]interface{}); ok {
		return list
	}
	return []interface{}{v}
}

// normalized converts every predicate value into the form encoding/json decodes it to, so that 50000, 50000.0 and
// decimal.NewFromInt(50000) compare equal as JSON numbers while "50000" remains a string
func (f FilterBy) normalized() (map[string]interface{}, error) {
	m := map[string]interface{}{}
	for k, v := range f {
		switch d := v.(type) {
		case decimal.Decimal:
			v = json.Number(d.String())
		case *decimal.Decimal:
			if d != nil {
				v = json.Number(d.String())
			}
		}

		b, e := json.Marshal(v)
		if e != nil {
			return nil, fmt.Errorf("could not marshal filter value for key '%s' (%v): %s", k, v, e)
		}

		var decoded interface{}
		e = json.Unmarshal(b, &decoded)
		if e != nil {
			return nil, fmt.Errorf("could not unmarshal filter value for key '%s' (%s): %s", k, string(b), e)
		}
		m[k] = decoded
	}
	return m, nil
}

// FilterRecords keeps the records that hold every key in filterBy with an equal value, preserving their order.
//
// A record that lacks any of the keys fails the whole filter and EmptyMatch is returned, as it is when nothing matches.
// An empty filterBy returns records unchanged.
func FilterRecords(records []interface{}, filterBy FilterBy) ([]interface{}, error) {
	if len(filterBy) == 0 {
		return records, nil
	}

	want, e := filterBy.normalized()
	if e != nil {
		return nil, fmt.Errorf("invalid filter: %s", e)
	}

	matches := []interface{}{}
	for _, r := range records {
		record, ok := r.(map[string]interface{})
		if !ok {
			return EmptyMatch(), nil
		}

		isMatch := true
		for key, value := range want {
			actual, ok := record[key]
			if !ok {
				return EmptyMatch(), nil
			}
			if !reflect.DeepEqual(actual, value) {
				isMatch = false
			}
		}

		if isMatch {
			matches = append(matches, record)
		}
	}

	if len(matches) == 0 {
		return EmptyMatch(), nil
	}
	return matches, nil
}
