package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/redis"
)

func newEventsCommand(configPath *string) *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the domain event streams",
	}
	eventsCmd.AddCommand(newEventsTailCommand(configPath))
	return eventsCmd
}

func newEventsTailCommand(configPath *string) *cobra.Command {
	var stream, group, consumer string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Follow a stream through a consumer group and print each event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(events.Streams, stream) {
				return fmt.Errorf("unknown stream %q (want one of %s)", stream, strings.Join(events.Streams, ", "))
			}
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cfg.RedisEnabled() {
				return errors.New("events tail needs REDIS_ADDR")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := redis.NewClient(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()

			subscriber := events.NewSubscriber(client.Client, events.SubscriberConfig{
				Group:    group,
				Consumer: consumer,
				Stream:   stream,
				Handler:  printEvent(cmd.OutOrStdout(), stream),
			})
			if err := subscriber.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	hostname, _ := os.Hostname()
	cmd.Flags().StringVar(&stream, "stream", events.LedgerEventsStream, "stream to follow")
	cmd.Flags().StringVar(&group, "group", "bankd-tail", "consumer group name")
	cmd.Flags().StringVar(&consumer, "consumer", "tail-"+hostname, "consumer name within the group")

	return cmd
}

func printEvent(w io.Writer, stream string) events.Handler {
	return func(_ context.Context, event events.Event) error {
		_, err := fmt.Fprintln(w, formatEvent(stream, event))
		return err
	}
}

func formatEvent(stream string, event events.Event) string {
	data, err := json.Marshal(event.Data)
	if err != nil {
		data = []byte(fmt.Sprint(event.Data))
	}
	return fmt.Sprintf("%s %s %s %s", event.Timestamp.UTC().Format(time.RFC3339), stream, event.Type, data)
}
