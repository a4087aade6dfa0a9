package main

import (
	"fmt"
	"strings"

	"github.com/Kingrashy12/ziglet"
)

func main() {
	app := ziglet.New("example", "0.1.0").
		Describe("An example application demonstrating ziglet features")

	app.Register(
		ziglet.NewCommand("greet", "Greet someone by name").
			Option(
				ziglet.String("name").Alias("n").Required().Describe("Name to greet").Option(),
				ziglet.Bool("shout").Alias("s").Describe("Greet loudly").Option(),
			).
			Run(func(ctx *ziglet.Context) error {
				greeting := fmt.Sprintf("Hello, %s!", ctx.String("name"))
				if ctx.Bool("shout") {
					greeting = strings.ToUpper(greeting)
				}
				fmt.Fprintln(ctx.Out, greeting)
				return nil
			}).Command(),

		ziglet.NewCommand("calc", "Add two numbers").
			Option(
				ziglet.Number("a").Required().Describe("First addend").Option(),
				ziglet.Number("b").Required().Describe("Second addend").Option(),
			).
			Run(func(ctx *ziglet.Context) error {
				fmt.Fprintln(ctx.Out, ctx.Number("a")+ctx.Number("b"))
				return nil
			}).Command(),

		ziglet.NewCommand("install", "Install packages").
			Option(
				ziglet.Bool("dev").Alias("D").Describe("Install as dev dependencies").Option(),
				ziglet.String("target").Alias("t").
					Choices("main", "app").
					Default(ziglet.StringValue("main")).
					Describe("Install target").Option(),
			).
			Run(func(ctx *ziglet.Context) error {
				for _, pkg := range ctx.Args {
					fmt.Fprintf(ctx.Out, "installing %s (dev=%t, target=%s)\n",
						pkg, ctx.Bool("dev"), ctx.String("target"))
				}
				return nil
			}).Command(),
	)

	app.Main()
}
