package column

import "kmt/value"

// ZeroValue returns the zero-valued Value for a scalar kind — used to
// fill physical slots that exist (e.g. ones sitting in a table's free
// list) but hold no live, externally observable row, so a newly added
// column still has a matching cell at every physical slot.
func ZeroValue(k value.Kind) value.Value {
	switch k {
	case value.KindInt32:
		return value.Int32(0)
	case value.KindInt64:
		return value.Int64(0)
	case value.KindFloat32:
		return value.Float32(0)
	case value.KindFloat64:
		return value.Float64(0)
	case value.KindStr:
		return value.Str("")
	case value.KindBool:
		return value.Bool(false)
	case value.KindDate:
		return value.FromDate(value.Date{})
	case value.KindDateTime:
		return value.FromDateTime(value.DateTime{})
	default:
		return value.Value{}
	}
}
