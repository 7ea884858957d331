package agent

import (
	"fmt"
	"reflect"

	"github.com/samuelfneumann/goplan/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Tabular, seed uint64) (Planner, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Planner) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config constructs
	Type() Type
}

// ConfigList implements functionality for storing a number of Configs
// in a simple manner. Instead of storing a slice of Configs, a
// ConfigList stores the values for each Config field, and the list is
// made up of every combination of field values. Each field of a
// ConfigList must be a slice named identically to a field of the
// corresponding Config.
type ConfigList interface {
	// Config returns an empty Config of the type stored by the list
	Config() Config

	// Type returns the type of agent constructed by Configs in the
	// list
	Type() Type

	// Len returns the number of Configs stored by the list
	Len() int

	// NumFields returns the number of settable fields of the list
	NumFields() int
}

// ConfigAt returns the Config at index i in a ConfigList. Configs are
// ordered by every combination of the list's field values, with later
// fields varying fastest.
func ConfigAt(i int, list ConfigList) Config {
	if i < 0 || i >= list.Len() {
		panic(fmt.Sprintf("configAt: index %d out of range [0, %d)", i,
			list.Len()))
	}

	listVal := reflect.ValueOf(list)
	if listVal.Kind() == reflect.Ptr {
		listVal = listVal.Elem()
	}

	config := reflect.New(reflect.TypeOf(list.Config())).Elem()

	for f := listVal.NumField() - 1; f >= 0; f-- {
		name := listVal.Type().Field(f).Name
		values := listVal.Field(f)
		if values.Kind() != reflect.Slice {
			panic(fmt.Sprintf("configAt: ConfigList field %v is not a "+
				"slice", name))
		}

		field := config.FieldByName(name)
		if !field.IsValid() {
			panic(fmt.Sprintf("configAt: Config has no field %v", name))
		}

		field.Set(values.Index(i % values.Len()))
		i /= values.Len()
	}

	return config.Interface().(Config)
}
