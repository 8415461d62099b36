package card

import (
	"io"

	"github.com/fatih/color"
)

type Color interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
}

type colorStruct struct {
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

var Red = &colorStruct{
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Black = &colorStruct{
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Joker = &colorStruct{
	colorFunction: color.New(color.FgHiYellow, color.Bold).SprintfFunc(),
}

var Stdout io.Writer = color.Output
