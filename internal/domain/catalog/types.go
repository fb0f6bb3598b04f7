package catalog

import "strings"

type ServiceType string

const (
	TypeInPerson ServiceType = "IN_PERSON"
	TypeOnline   ServiceType = "ONLINE"
	TypeBoth     ServiceType = "BOTH"
)

func (t ServiceType) String() string {
	return string(t)
}

func ParseServiceType(s string) (ServiceType, error) {
	if strings.TrimSpace(s) == "" {
		return TypeInPerson, nil
	}
	t := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeInPerson, TypeOnline, TypeBoth:
		return t, nil
	default:
		return "", ErrInvalidServiceType
	}
}
