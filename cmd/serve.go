package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/notesprite/constants"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	servePort int
	serveDir  string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveDir, "dir", constants.GetSpritesDir(), "directory to serve")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves built sprites locally",
	Long:  `Serves the sprites directory over HTTP with CORS so the web app can point at a local build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(serveDir)))
	handler := cors.Default().Handler(router)

	addr := fmt.Sprintf(":%v", servePort)
	fmt.Printf("Serving %v on %v\n", serveDir, addr)
	return http.ListenAndServe(addr, handler)
}
