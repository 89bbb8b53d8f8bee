package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/config"
	"github.com/treykane/cipher-nexus/internal/dial"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

func newEncodeCmd() *cobra.Command {
	return newShiftTextCmd("encode", "Encrypt text with the cipher wheel", cipher.Encrypt)
}

func newDecodeCmd() *cobra.Command {
	return newShiftTextCmd("decode", "Decrypt text with the cipher wheel", cipher.Decrypt)
}

// newShiftTextCmd builds encode and decode. Text comes from the arguments, or
// from stdin line by line when there are none. Letters are upper-cased and
// rotated; everything else is printed unchanged.
func newShiftTextCmd(name, short string, shiftText func(string, int) string) *cobra.Command {
	var shift int
	cmd := &cobra.Command{
		Use:   name + " [text...]",
		Short: short,
		Example: fmt.Sprintf("  ciphernexus %s --shift 3 attack at dawn\n  echo clayton | ciphernexus %s", name, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err := fmt.Fprintln(out, shiftText(strings.Join(args, " "), shift))
				return err
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if _, err := fmt.Fprintln(out, shiftText(scanner.Text(), shift)); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", config.DefaultShift, "cipher shift (wraps modulo 26)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		flags  wheelFlags
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the wheel as SVG or PNG",
		Long: `Render writes the cipher wheel for the given shift and text, the same picture
the AI Visualizer sends to Gemini. SVG goes to stdout unless --output is set;
PNG always needs --output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Defaults()
			flags.apply(cmd, &cfg)
			props := renderProps(cfg)

			var buf bytes.Buffer
			switch strings.ToLower(format) {
			case "svg":
				wheel.SVG(&buf, props)
			case "png":
				if output == "" || output == "-" {
					return fmt.Errorf("png output needs --output <file>")
				}
				data, err := wheel.Capture(props)
				if err != nil {
					return fmt.Errorf("render png: %w", err)
				}
				buf.Write(data)
			default:
				return fmt.Errorf("unknown format %q (want svg or png)", format)
			}
			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "svg or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

// renderProps derives the wheel state the TUI would show for cfg.
func renderProps(cfg config.Config) wheel.Props {
	letter := dial.DefaultReferenceLetter
	if l, ok := dial.LastLetter(cfg.ReferenceLetter); ok {
		letter = l
	}
	shift := cipher.Normalize(cfg.Shift)
	plain := cipher.Sanitize(cfg.PlainText)
	return wheel.Props{
		Shift:           shift,
		ReferenceLetter: letter,
		PlainText:       plain,
		CipherText:      cipher.Encrypt(plain, shift),
	}
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("rendered wheel", "path", path, "bytes", len(data))
	return nil
}
