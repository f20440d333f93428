// Command snapdemo builds a small block program and writes it as SVG.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/snapkit/snap"
	"github.com/snapkit/snap/constants"
	"github.com/snapkit/snap/render"
	"github.com/snapkit/snap/text"
)

func main() {
	var (
		output    = flag.String("output", "demo.svg", "output file")
		rtl       = flag.Bool("rtl", false, "render right-to-left")
		fontPath  = flag.String("font", "", "TTF font for shaped text measurement (heuristic when empty)")
		constPath = flag.String("constants", "", "TOML constant overrides")
		seed      = flag.Int64("seed", 1, "bump jitter seed")
	)
	flag.Parse()

	opts := []render.Option{
		render.WithRTL(*rtl),
		render.WithRandSeed(*seed),
	}
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("read font: %v", err)
		}
		shaped, err := text.NewShaped(data, 11)
		if err != nil {
			log.Fatalf("parse font: %v", err)
		}
		opts = append(opts, render.WithMeasurer(shaped))
	}
	if *constPath != "" {
		f, err := os.Open(*constPath)
		if err != nil {
			log.Fatalf("open constants: %v", err)
		}
		c, err := constants.Load(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("load constants: %v", err)
		}
		opts = append(opts, render.WithConstants(c))
	}

	ws := render.NewWorkspace(opts...)
	buildProgram(ws)

	doc, err := ws.SVG()
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := os.WriteFile(*output, []byte(doc), 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("demo saved to %s", *output)
}

// buildProgram assembles a repeat loop holding a print statement whose
// value input carries an expression block, plus a hatted event block
// above the loop.
func buildProgram(ws *render.Workspace) {
	event := ws.NewBlock("event_start")
	event.Model().SetHat(true)
	event.Model().SetNextStatement()
	event.Model().AppendDummyInput().AppendField(snap.NewLabelField("when started"))

	repeat := ws.NewBlock("controls_repeat")
	repeat.Model().SetPreviousStatement().SetNextStatement()
	row := repeat.Model().AppendDummyInput()
	row.AppendField(snap.NewLabelField("repeat")).
		AppendField(snap.NewTextField("10")).
		AppendField(snap.NewLabelField("times"))
	repeat.Model().AppendStatementInput("DO")

	print := ws.NewBlock("text_print")
	print.Model().SetPreviousStatement().SetNextStatement()
	print.Model().AppendValueInput("TEXT").
		AppendField(snap.NewLabelField("print")).
		SetCheck("String")

	hello := ws.NewBlock("text_literal")
	hello.Model().SetOutput("String")
	hello.Model().AppendDummyInput().AppendField(snap.NewTextField("hello"))

	event.MoveTo(snap.Pt(20, 20))

	must := func(err error) {
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
	}
	must(ws.Conn(event.Model().Next()).Connect(ws.Conn(repeat.Model().Previous())))
	do := repeat.Model().InputByName("DO")
	must(ws.Conn(do.Connection()).Connect(ws.Conn(print.Model().Previous())))
	textIn := print.Model().InputByName("TEXT")
	must(ws.Conn(textIn.Connection()).Connect(ws.Conn(hello.Model().Output())))
}
