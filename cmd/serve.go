package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweeplab/minefield/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host minefield sessions over WebSocket",
	Long: `serve runs a WebSocket server where each connection plays its own
independent game. Clients send JSON commands (new, reveal, flag, question)
to /ws and receive the packed board state after every move.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		srv := server.NewServer(log)
		log.WithField("addr", serveAddr).Info("listening")
		return http.ListenAndServe(serveAddr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
