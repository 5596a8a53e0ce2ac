package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

func newPayloadCmd(opts *options) *cobra.Command {
	var showQR bool

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the pairing payload without connecting",
		Long: `Prints the text encoded in the pairing QR code:

  WIFI:T:ADB;S:<name>;P:<code>;;

Use it to render the QR code with another tool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			code, err := cfg.Code()
			if err != nil {
				return err
			}

			payload, err := pairing.EncodePayload(cfg.PairName, code)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showQR {
				qr, err := pairing.RenderQRCode(payload)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, qr)
			}
			fmt.Fprintln(out, payload)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showQR, "qr", false, "Also print the QR code")
	return cmd
}
