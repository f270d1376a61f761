package main

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/shabbyrobe/go-apint"
	"github.com/shabbyrobe/go-apint/internal/config"
)

var errUnknownFormat = errors.New("unknown format")

// encodeInt returns the printable form of v in format. Binary formats are
// returned as hex bytes.
func encodeInt(format string, v apint.Int) (string, error) {
	switch format {
	case "json":
		bts, err := json.Marshal(v)
		return string(bts), err
	case "text":
		bts, err := v.MarshalText()
		return string(bts), err
	case "cbor":
		bts, err := cbor.Marshal(v)
		return hex.EncodeToString(bts), err
	case "msgpack":
		bts, err := msgpack.Marshal(v)
		return hex.EncodeToString(bts), err
	}
	return "", errors.Wrapf(errUnknownFormat, "%q (want one of %s)", format, strings.Join(config.Formats(), ", "))
}

func decodeInt(format, data string) (v apint.Int, err error) {
	var bts []byte
	switch format {
	case "json", "text":
		bts = []byte(data)
	case "cbor", "msgpack":
		if bts, err = hex.DecodeString(data); err != nil {
			return v, errors.Wrapf(err, "%s data must be hex bytes", format)
		}
	default:
		return v, errors.Wrapf(errUnknownFormat, "%q (want one of %s)", format, strings.Join(config.Formats(), ", "))
	}

	switch format {
	case "json":
		err = json.Unmarshal(bts, &v)
	case "text":
		err = v.UnmarshalText(bts)
	case "cbor":
		err = cbor.Unmarshal(bts, &v)
	case "msgpack":
		err = msgpack.Unmarshal(bts, &v)
	}
	return v, err
}

func newEncodeCmd(e *env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode A",
		Short: "Print A in a serialization format",
		Long: "Print A as json, text, cbor or msgpack. Binary formats are printed as hex bytes.\n" +
			"The default format comes from [encode] format in the config file.\n\n" + operandHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("A", args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = e.cfg.Encode.Format
			}
			out, err := encodeInt(format, a)
			if err != nil {
				return err
			}
			e.log.Debug().Str("format", format).Int("bytes", len(out)).Msg("encoded")
			return e.println(out)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "json|text|cbor|msgpack")
	return cmd
}

const decodeHelp = `Decode DATA produced by encode and print it as hex. FORMAT is json, text,
cbor or msgpack; cbor and msgpack DATA is hex bytes.
Put -- before FORMAT when DATA is negative text so it is not read as a flag:

  apint decode -- text -ff`

func newDecodeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FORMAT DATA",
		Short: "Decode DATA produced by encode and print it as hex",
		Long:  decodeHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decodeInt(args[0], args[1])
			if err != nil {
				return err
			}
			return e.println(v)
		},
	}
}
