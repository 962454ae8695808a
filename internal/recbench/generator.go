package recbench

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/marquee-live/marquee/pkg/logger"
)

// genrePool mirrors the genres the demo catalog actually carries, plus a
// few that do not exist so taste misses get exercised too.
var genrePool = []string{
	"EDM", "Indie", "Pop", "Hip-Hop", "Jazz", "Rock", "R&B", "Classical",
	"Latin", "Country", "Metal", "Folk", "Reggae", "Soul", "K-Pop",
	"Blues", "Afrobeats", "Techno", "Polka", "Chiptune",
}

// Band parameter ranges for generated queries.
const (
	maxLikedGenres = 4
	minBandCenter  = 10.0
	maxBandCenter  = 120.0
	maxBandWidth   = 40.0
)

// generateQueries builds n randomized recommendation queries. A slice of
// the queries intentionally carries no liked genres or a zero band width
// so the edge paths see traffic as well.
func generateQueries(ctx context.Context, config *Config, stats *Stats) []Query {
	logger.Get().Info(ctx, "generating queries", logger.Int("count", config.Queries))

	queries := make([]Query, 0, config.Queries)
	for i := 0; i < config.Queries; i++ {
		q := Query{
			ID:         uuid.NewString(),
			BandCenter: minBandCenter + rand.Float64()*(maxBandCenter-minBandCenter),
			BandWidth:  rand.Float64() * maxBandWidth,
			Limit:      1 + rand.Intn(config.MaxLimit),
		}

		// Every tenth query keeps defaults for genres; every twentieth
		// collapses the band to exercise the exact-match price policy.
		if i%10 != 0 {
			count := 1 + rand.Intn(maxLikedGenres)
			for _, idx := range rand.Perm(len(genrePool))[:count] {
				q.LikedGenres = append(q.LikedGenres, genrePool[idx])
			}
		}
		if i%20 == 0 {
			q.BandWidth = 0
		}

		queries = append(queries, q)
	}

	stats.QueriesGenerated = len(queries)
	return queries
}
