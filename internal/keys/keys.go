package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/mbarros/particle-clash/internal/game"
)

// BattleKey produces the canonical content hash of one encounter's inputs:
// both snapshots plus the strategy catalog. Identical inputs always hash
// identically, so the key is safe to use for the read-through result cache
// and for tracing rematches in battle records. Snapshot names are
// deliberately excluded — two creatures with the same composition resolve
// the same way.
func BattleKey(a, b *game.Snapshot, catalog game.StrategyCatalog) string {
	var sb strings.Builder
	writeSnapshot(&sb, a)
	sb.WriteByte('|')
	writeSnapshot(&sb, b)
	sb.WriteByte('|')
	for _, s := range catalog {
		sb.WriteString(s)
		sb.WriteByte(',')
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func writeSnapshot(sb *strings.Builder, s *game.Snapshot) {
	for _, c := range s.Roles {
		sb.WriteString(strconv.Itoa(c))
		sb.WriteByte(',')
	}
	for _, t := range s.Traits {
		sb.WriteString(t.Name)
		sb.WriteByte(';')
		sb.WriteString(string(t.Kind))
		sb.WriteByte(';')
		sb.WriteString(t.Strategy)
		sb.WriteByte(';')
		sb.WriteString(strconv.FormatFloat(t.Magnitude, 'g', -1, 64))
		sb.WriteByte(';')
		sb.WriteString(t.RequiresTrait)
		sb.WriteByte(';')
		sb.WriteString(strconv.FormatFloat(t.BehaviorBonus, 'g', -1, 64))
		sb.WriteByte('/')
	}
}
