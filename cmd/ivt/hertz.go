package main

import (
	"github.com/spf13/pflag"

	"omibyte.io/cortexm/peripheral"
)

// hertzValue lets a flag take frequencies such as 48MHz.
type hertzValue peripheral.Hertz

var _ pflag.Value = (*hertzValue)(nil)

func (h *hertzValue) String() string {
	if *h == 0 {
		return ""
	}
	return peripheral.Hertz(*h).String()
}

func (h *hertzValue) Set(s string) error {
	value, err := peripheral.ParseHertz(s)
	if err != nil {
		return err
	}
	*h = hertzValue(value)
	return nil
}

func (h *hertzValue) Type() string {
	return "frequency"
}
