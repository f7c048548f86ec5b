// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/theblockbrain/ai-safeguard/internal/cfg"
	"github.com/theblockbrain/ai-safeguard/internal/evmasm"
	"github.com/theblockbrain/ai-safeguard/log"
	pkgerrors "github.com/theblockbrain/ai-safeguard/pkg/errors"
)

var cfgCommand = &cli.Command{
	Name:      "cfg",
	Usage:     "resolve and render the control-flow graph as DOT",
	ArgsUsage: "<bytecode-hex-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "o", Usage: "output DOT file", Required: true},
		&cli.StringFlag{Name: "disasm", Usage: "also write a flat disassembly listing to this file"},
		&cli.StringFlag{Name: "fork", Usage: "opcode set to disassemble against (e.g. istanbul, london, shanghai)", Value: "shanghai"},
	},
	Action: cfgAction,
}

func cfgAction(c *cli.Context) error {
	inputPath := c.Args().First()
	if inputPath == "" {
		return cli.ShowCommandHelp(c, "cfg")
	}
	outPath := c.String("o")
	if outPath == "" {
		return pkgerrors.ErrOutputPathRequired
	}

	code, err := readBytecodeFile(inputPath)
	if err != nil {
		return err
	}
	log.Info("bytecode read", "file", inputPath, "bytes", len(code))

	fork := parseFork(c.String("fork"))
	ops := evmasm.Disassemble(code, fork)
	log.Info("disassembled", "ops", len(ops))

	if disasmPath := c.String("disasm"); disasmPath != "" {
		if err := writeOutput(disasmPath, evmasm.FormatListing(ops)); err != nil {
			return pkgerrors.Wrapf(err, "writing %s", disasmPath)
		}
	}

	blocks := evmasm.SegmentBlocks(ops)
	log.Info("blocks segmented", "blocks", len(blocks))

	graph := cfg.Resolve(blocks)
	log.Info("edges resolved", "edges", len(graph.Edges), "anywhere", len(graph.Anywhere))

	return writeOutput(outPath, cfg.RenderDOT(graph))
}

func parseFork(name string) evmasm.Fork {
	switch name {
	case "frontier":
		return evmasm.Frontier
	case "homestead":
		return evmasm.Homestead
	case "tangerinewhistle":
		return evmasm.TangerineWhistle
	case "spuriousdragon":
		return evmasm.SpuriousDragon
	case "byzantium":
		return evmasm.Byzantium
	case "constantinople":
		return evmasm.Constantinople
	case "istanbul":
		return evmasm.Istanbul
	case "berlin":
		return evmasm.Berlin
	case "london":
		return evmasm.London
	case "shanghai":
		return evmasm.Shanghai
	default:
		return evmasm.DefaultFork
	}
}
