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
	"encoding/hex"
	"os"
	"strings"

	pkgerrors "github.com/theblockbrain/ai-safeguard/pkg/errors"
)

// readBytecodeFile reads path and decodes its contents as hex, mirroring
// original_source/utils/generate_cfg.py's bytes.fromhex(file.read()).
func readBytecodeFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading %s", path)
	}

	s := strings.TrimSpace(string(raw))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, pkgerrors.Wrap(pkgerrors.ErrBytecodeFileEmpty, path)
	}

	code, err := hex.DecodeString(s)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrInvalidHex, path)
	}
	return code, nil
}

// writeOutput writes text to path, or to stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
