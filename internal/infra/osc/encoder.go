package osc

import (
	"fmt"

	"github.com/hypebeast/go-osc/osc"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

// EncodeEntry returns the packets for one entry in send order: select/create
// the slot first, then name it. Naming targets the addressed slot, so the
// order must not change.
func EncodeEntry(entry domain.SnapshotEntry) ([][]byte, error) {
	messages := EntryMessages(entry)

	packets := make([][]byte, 0, len(messages))
	for _, msg := range messages {
		data, err := msg.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", msg.Address, err)
		}
		packets = append(packets, data)
	}

	return packets, nil
}

func EntryMessages(entry domain.SnapshotEntry) []*osc.Message {
	return []*osc.Message{
		osc.NewMessage(NewSnapshotAddress(entry.Index), int32(0)),
		osc.NewMessage(RenameSnapshotAddress(entry.Index), entry.Name),
	}
}
