package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfigList pairs a ConfigList with its Type so that a list can
// be serialized and later deserialized into its concrete type without
// the caller declaring that type up front. The Type is looked up in
// the registry of registered agent types on deserialization.
type TypedConfigList struct {
	Type
	ConfigList
}

// NewTypedConfigList types the argument ConfigList and returns it
// as a TypedConfigList which explicitly holds its Type.
func NewTypedConfigList(c ConfigList) TypedConfigList {
	return TypedConfigList{Type: c.Type(), ConfigList: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (t *TypedConfigList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       Type
		ConfigList json.RawMessage
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ty, found := registeredTypes[raw.Type]
	if !found {
		return fmt.Errorf("unmarshaljson: no registered agent type %v",
			raw.Type)
	}

	// Decode into a pointer to the registered concrete type, then
	// store the pointed-to value
	list := reflect.New(ty).Interface()
	if err := json.Unmarshal(raw.ConfigList, list); err != nil {
		return err
	}

	t.Type = raw.Type
	t.ConfigList = reflect.ValueOf(list).Elem().Interface().(ConfigList)
	return nil
}

// At returns the Config at index i in the TypedConfigList
func (t *TypedConfigList) At(i int) Config {
	return ConfigAt(i, t.ConfigList)
}
