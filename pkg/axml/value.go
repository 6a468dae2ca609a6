package axml

import (
	"fmt"
	"strconv"
)

// ValueType tags the payload of a ResourceValue. The values come from
// Android's Res_value::dataType.
type ValueType uint8

const (
	TypeNull       ValueType = 0x00
	TypeReference  ValueType = 0x01
	TypeAttribute  ValueType = 0x02
	TypeString     ValueType = 0x03
	TypeFloat      ValueType = 0x04
	TypeDimension  ValueType = 0x05
	TypeFraction   ValueType = 0x06
	TypeDec        ValueType = 0x10
	TypeHex        ValueType = 0x11
	TypeBoolean    ValueType = 0x12
	TypeColorARGB8 ValueType = 0x1c
	TypeColorRGB8  ValueType = 0x1d
	TypeColorARGB4 ValueType = 0x1e
	TypeColorRGB4  ValueType = 0x1f
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeReference:
		return "Reference"
	case TypeAttribute:
		return "Attribute"
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeDimension:
		return "Dimension"
	case TypeFraction:
		return "Fraction"
	case TypeDec:
		return "Dec"
	case TypeHex:
		return "Hex"
	case TypeBoolean:
		return "Boolean"
	case TypeColorARGB8:
		return "ColorArgb8"
	case TypeColorRGB8:
		return "ColorRgb8"
	case TypeColorARGB4:
		return "ColorArgb4"
	case TypeColorRGB4:
		return "ColorRgb4"
	}
	return fmt.Sprintf("ValueType(0x%02x)", uint8(t))
}

// resourceValue is the fixed 8-byte tagged value union carried by attributes
// and character-data nodes.
type resourceValue struct {
	size uint16
	res  uint8
	typ  ValueType
	data uint32
}

func parseResourceValue(r *reader) (resourceValue, error) {
	size, err := r.u16()
	if err != nil {
		return resourceValue{}, err
	}
	res, err := r.u8()
	if err != nil {
		return resourceValue{}, err
	}
	typ, err := r.u8()
	if err != nil {
		return resourceValue{}, err
	}
	data, err := r.u32()
	if err != nil {
		return resourceValue{}, err
	}
	return resourceValue{size: size, res: res, typ: ValueType(typ), data: data}, nil
}

// resolve renders the value as display text. Only literal value types get a
// real rendering; references, floats, dimensions, fractions and colors come
// out as "<TypeName>/<data>" placeholders since resolving them would need
// the resource table.
func (v resourceValue) resolve(pool *stringPool) (string, error) {
	switch v.typ {
	case TypeString:
		s, ok, err := pool.lookup(v.data)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: string value carries the absent sentinel", ErrStringNotFound)
		}
		return s, nil
	case TypeDec:
		return strconv.FormatUint(uint64(v.data), 10), nil
	case TypeHex:
		// Decimal digits behind the 0x prefix, matching established
		// axmldump output.
		return "0x" + strconv.FormatUint(uint64(v.data), 10), nil
	case TypeBoolean:
		if v.data == 0 {
			return "false", nil
		}
		return "true", nil
	}
	return v.typ.String() + "/" + strconv.FormatUint(uint64(v.data), 10), nil
}
