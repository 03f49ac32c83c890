package profile

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-coerce/coerce"
	"github.com/mitchellh/copystructure"
)

func init() {
	// coerce value types carry unexported fields; teach copystructure to
	// clone them so defaults snapshots survive intact. All of them are
	// immutable values, so a plain copy is a correct deep copy.
	for _, v := range []any{
		coerce.TimeSpec{},
		coerce.StreamSpec{},
		coerce.DBValue{},
	} {
		copystructure.Copiers[reflect.TypeOf(v)] = func(v any) (any, error) {
			return v, nil
		}
	}
	copystructure.Copiers[reflect.TypeOf(big.Rat{})] = func(v any) (any, error) {
		r := v.(big.Rat)
		return *new(big.Rat).Set(&r), nil
	}
}

var (
	timeSpecType   = reflect.TypeOf(coerce.TimeSpec{})
	marginType     = reflect.TypeOf(coerce.Margin{})
	resolutionPtr  = reflect.TypeOf(&coerce.Resolution{})
	frameRatePtr   = reflect.TypeOf(&big.Rat{})
	streamSpecType = reflect.TypeOf(coerce.StreamSpec{})
	timeRangeType  = reflect.TypeOf(coerce.TimeRange{})
	speedRangeType = reflect.TypeOf(coerce.SpeedRange{})
	dbValueType    = reflect.TypeOf(coerce.DBValue{})
)

// DecodeHooks returns the hook chain used when unmarshalling raw provider
// data into a profile struct. Raw tokens destined for coerce value types
// run through the matching coercer, so a profile file can say
// margin: "0.3s" or frame_rate: "ntsc" and decode to typed values.
func DecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		coerceDecodeHook(),
	)
}

func coerceDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from == to {
			return data, nil
		}

		token, ok := rawToken(data)
		if !ok {
			return data, nil
		}

		switch to {
		case timeSpecType:
			return coerce.Time(token)
		case marginType:
			return coerce.ParseMargin(token)
		case resolutionPtr:
			return coerce.ParseResolution(token)
		case frameRatePtr:
			// absent frame rate means follow the source
			if token == "" {
				return (*big.Rat)(nil), nil
			}
			return coerce.FrameRate(token)
		case streamSpecType:
			return coerce.ParseStream(token)
		case timeRangeType:
			return coerce.ParseTimeRange(token)
		case speedRangeType:
			return coerce.ParseSpeedRange(token)
		case dbValueType:
			return coerce.DBNumber(token)
		}
		return data, nil
	}
}

// rawToken renders scalar provider data as the token string a coercer
// expects. Structured data (maps, slices) is left for mapstructure.
func rawToken(data any) (string, bool) {
	switch v := data.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}
