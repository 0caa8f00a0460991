package core

import (
	"errors"
	"fmt"
	"strconv"
)

// ParamType enumerates supported option value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued options.
	ParamTypeInt ParamType = "int"
)

var (
	// ErrOptionIndex reports an option index outside [0, OptionCount).
	ErrOptionIndex = errors.New("option index out of range")
	// ErrOptionType reports a value that cannot be converted to the option's type.
	ErrOptionType = errors.New("option value has wrong type")
	// ErrUnknownOption reports a key that no option is registered under.
	ErrUnknownOption = errors.New("unknown option")
)

// BoundedOption is a named integer clamped to [Min, Max]. The value is clamped
// on every set, including construction.
type BoundedOption struct {
	Key   string
	Label string
	Min   int
	Max   int

	value int
}

// NewIntOption constructs an option and clamps value into range.
func NewIntOption(key, label string, value, minimum, maximum int) *BoundedOption {
	o := &BoundedOption{Key: key, Label: label, Min: minimum, Max: maximum}
	o.Set(value)
	return o
}

// Type returns the option's data type tag.
func (o *BoundedOption) Type() ParamType { return ParamTypeInt }

// Value returns the current value.
func (o *BoundedOption) Value() int { return o.value }

// Set stores v clamped into [Min, Max]. It never fails.
func (o *BoundedOption) Set(v int) {
	o.value = min(max(v, o.Min), o.Max)
}

// OptionSet gives indexed access to a generator's options without static
// knowledge of its fields. Indices follow declaration order.
type OptionSet interface {
	OptionCount() int
	OptionKey(i int) string
	OptionPrompt(i int) string
	OptionType(i int) ParamType
	OptionValue(i int) any
	SetOptionValue(i int, v any) error
}

// Options implements OptionSet over an ordered list of bounded options.
// Embed it and call SetOptions once with the options in index order.
type Options struct {
	list []*BoundedOption
}

// SetOptions registers the option list.
func (o *Options) SetOptions(opts ...*BoundedOption) {
	o.list = opts
}

// Option returns the option at index i.
func (o *Options) Option(i int) (*BoundedOption, error) {
	if i < 0 || i >= len(o.list) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOptionIndex, i, len(o.list))
	}
	return o.list[i], nil
}

// OptionCount returns the number of registered options.
func (o *Options) OptionCount() int { return len(o.list) }

// OptionKey returns the machine-readable key of option i, or "" if i is out of range.
func (o *Options) OptionKey(i int) string {
	opt, err := o.Option(i)
	if err != nil {
		return ""
	}
	return opt.Key
}

// OptionPrompt returns the human-readable label of option i.
func (o *Options) OptionPrompt(i int) string {
	opt, err := o.Option(i)
	if err != nil {
		return ""
	}
	return opt.Label
}

// OptionType returns the type tag of option i.
func (o *Options) OptionType(i int) ParamType {
	opt, err := o.Option(i)
	if err != nil {
		return ""
	}
	return opt.Type()
}

// OptionValue returns the current value of option i, or nil if i is out of range.
func (o *Options) OptionValue(i int) any {
	opt, err := o.Option(i)
	if err != nil {
		return nil
	}
	return opt.Value()
}

// SetOptionValue converts v to the option's type and stores it clamped.
// Integers of any width and decimal strings are accepted.
func (o *Options) SetOptionValue(i int, v any) error {
	opt, err := o.Option(i)
	if err != nil {
		return err
	}
	n, err := toInt(v)
	if err != nil {
		return fmt.Errorf("option %q: %w", opt.Key, err)
	}
	opt.Set(n)
	return nil
}

// IndexOf returns the index of the option registered under key.
func (o *Options) IndexOf(key string) (int, error) {
	for i, opt := range o.list {
		if opt.Key == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

// SetOption sets the option registered under key.
func (o *Options) SetOption(key string, v any) error {
	i, err := o.IndexOf(key)
	if err != nil {
		return err
	}
	return o.SetOptionValue(i, v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrOptionType, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrOptionType, v)
	}
}
