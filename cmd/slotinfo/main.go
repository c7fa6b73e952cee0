// Command slotinfo prints a summary of every record in a slot store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pthm-cable/kennel/config"
	"github.com/pthm-cable/kennel/save"
	"github.com/pthm-cable/kennel/storage/backend"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	storeKind := flag.String("store", envCfg.StoreKind, "Slot store: dir or sqlite")
	storePath := flag.String("store-path", envCfg.StorePath, "Directory (dir) or database file (sqlite)")
	flag.Parse()

	if *storeKind == backend.KindMemory {
		log.Fatal("--store must be dir or sqlite; a memory store is always empty")
	}

	store, err := backend.Open(*storeKind, *storePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if err := printSlots(context.Background(), store); err != nil {
		log.Fatal(err)
	}
}

func printSlots(ctx context.Context, store backend.Store) error {
	infos, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing slots: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("no slots")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tBYTES\tWRITTEN\tVERSION\tSAVED AT\tCOINS\tDOGS\tLEVEL")
	for _, info := range infos {
		written := info.UpdatedAt.Format(time.RFC3339)
		if info.ID == save.SettingsSlot {
			fmt.Fprintf(w, "%s\t%d\t%s\t-\t-\t-\t-\t-\n", info.ID, info.Size, written)
			continue
		}

		data, err := store.ReadSlot(ctx, info.ID)
		if err != nil {
			return fmt.Errorf("reading %s: %w", info.ID, err)
		}
		snap, err := save.Decode(data)
		if err != nil {
			reason := "unreadable"
			if errors.Is(err, save.ErrUnsupportedVersion) {
				reason = "newer version"
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t-\t-\t-\t-\n", info.ID, info.Size, written, reason)
			continue
		}

		savedAt := "-"
		if t := snap.Time(); !t.IsZero() {
			savedAt = t.Format(time.RFC3339)
		}
		coins, level := "-", "-"
		if snap.Coins != nil {
			coins = fmt.Sprint(*snap.Coins)
		}
		if snap.Progression != nil {
			level = fmt.Sprint(snap.Progression.Level)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\t%d\t%s\n",
			info.ID, info.Size, written, snap.Version, savedAt, coins, len(snap.Roster), level)
	}
	return w.Flush()
}
