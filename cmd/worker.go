package cmd

import (
	"sync"

	"fraxlend/worker"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "fraxlend keeper worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		pairs := providePairStore(database)
		events := provideEventStore(database)
		properties := providePropertyStore(database)
		p := providePair(ctx, pairs)

		workers := []worker.Worker{
			provideKeeper(ctx, p, pairs, events, properties),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil {
					log.WithError(err).Errorln("worker aborted")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
