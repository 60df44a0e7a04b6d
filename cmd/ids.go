package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/moneymirror/internal/ledger"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// resolveID matches ref against ids exactly or by unique prefix, so the
// short ids printed by list commands can be typed back in.
func resolveID(ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty id: %w", ledger.ErrNotFound)
	}

	var match string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("id %q: %w", ref, ledger.ErrNotFound)
	}
	return match, nil
}

func transactionIDs(l *ledger.Ledger) []string {
	txs := l.Transactions()
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	return ids
}

func goalIDs(l *ledger.Ledger) []string {
	goals := l.Goals()
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return ids
}

func subscriptionIDs(l *ledger.Ledger) []string {
	subs := l.Subscriptions()
	ids := make([]string, len(subs))
	for i, s := range subs {
		ids[i] = s.ID
	}
	return ids
}
