package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fraxlend/handler"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run fraxlend api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		pairs := providePairStore(database)
		events := provideEventStore(database)
		p := providePair(ctx, pairs)

		ctx, quit := context.WithCancel(ctx)
		defer quit()

		if withKeeper, _ := cmd.Flags().GetBool("keeper"); withKeeper {
			k := provideKeeper(ctx, p, pairs, events, providePropertyStore(database))
			go func() {
				if err := k.Run(ctx); err != nil {
					log.WithError(err).Errorln("keeper aborted")
				}
			}()
		}

		svr := handler.New(p, events, rootCmd.Version)

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)
		mux.Mount("/", svr.Handler())

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
	serverCmd.Flags().Bool("keeper", true, "run the keeper in process")
}
