package nftscope

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"mir4scope-backend/lib/scrapers/mir4"
	"mir4scope-backend/services/nftscope/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("services/nftscope")

type Options struct {
	// inclusive page range to crawl
	FirstPage int
	LastPage  int
	// how many listing entries aggregate at once, this is the only
	// throttle against the rate-sensitive upstream so it must stay
	// bounded
	Concurrency int
	// bounds one entry's aggregation so a hung endpoint cannot stall
	// a worker forever
	EntryTimeout time.Duration
	// stop the whole crawl at the first already-known entry instead of
	// skipping it and continuing. cheaper, but only safe when every
	// prior run completed in order (the catalog is newest-first).
	PrefixStop bool
}

type Crawler struct {
	client *mir4.Client
	db     *sql.DB
	qry    *db.Queries
	trade  mir4.TradeTable
	opts   Options
}

func NewCrawler(client *mir4.Client, database *sql.DB, trade mir4.TradeTable, opts Options) *Crawler {
	if opts.FirstPage < 1 {
		opts.FirstPage = 1
	}
	if opts.LastPage < opts.FirstPage {
		opts.LastPage = opts.FirstPage
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 4
	}
	if opts.EntryTimeout == 0 {
		opts.EntryTimeout = time.Minute * 2
	}
	return &Crawler{
		client: client,
		db:     database,
		qry:    db.New(database),
		trade:  trade,
		opts:   opts,
	}
}

type Outcome int

const (
	OutcomePersisted Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

type RunReport struct {
	Pages     int
	Entries   int
	Persisted int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

func (r *RunReport) tally(outcome Outcome) {
	r.Entries++
	switch outcome {
	case OutcomePersisted:
		r.Persisted++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

// returned by a worker to end a prefix-stop crawl, never surfaces to
// the caller
var errKnownEntry = errors.New("reached an already-known entry")

// Run walks the configured page range and aggregates every listing
// entry that is not yet in the store. Per-entry failures are absorbed
// and tallied, only a cancelled context ends the run early.
func (c *Crawler) Run(ctx context.Context) (RunReport, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	start := time.Now()
	report := RunReport{}
	var mu sync.Mutex

pages:
	for page := c.opts.FirstPage; page <= c.opts.LastPage; page++ {
		entries, err := c.client.ListPage(ctx, page)
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch catalog page", "page", page, "err", err)
			span.RecordError(err)
			if ctx.Err() != nil {
				span.SetStatus(codes.Error, ctx.Err().Error())
				return report, ctx.Err()
			}
			continue
		}
		report.Pages++
		slog.InfoContext(ctx, "crawling page", "page", page, "entries", len(entries))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.opts.Concurrency)
		for _, entry := range entries {
			entry := entry
			g.Go(func() error {
				outcome := c.aggregate(gctx, entry)
				mu.Lock()
				report.tally(outcome)
				mu.Unlock()
				if c.opts.PrefixStop && outcome == OutcomeSkipped {
					return errKnownEntry
				}
				return gctx.Err()
			})
		}
		err = g.Wait()
		if errors.Is(err, errKnownEntry) {
			slog.InfoContext(ctx, "stopping at first known entry", "page", page)
			break pages
		}
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			report.Duration = time.Since(start)
			return report, err
		}
	}

	report.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int("persisted", report.Persisted),
		attribute.Int("skipped", report.Skipped),
		attribute.Int("failed", report.Failed),
	)
	return report, nil
}

// characterRecord accumulates one entry's fetch results before they
// are merged into the store. Each field is written by exactly one
// goroutine during the fan-out.
type characterRecord struct {
	entry mir4.ListingEntry

	stats      map[string]string
	skills     map[string]string
	training   mir4.Training
	buildings  map[string]string
	assets     mir4.Assets
	potentials mir4.Potentials
	holyStuff  map[string]string
	codex      mir4.CodexSummary
	spirits    mir4.Spirits
	magicOrb   mir4.MagicOrbDeck

	inventory      []mir4.InventoryItem
	craftMaterials map[string]int64
	tickets        map[string]int64

	summary       mir4.Summary
	magicStone    mir4.MagicStoneDeck
	mysticalPiece mir4.MysticalPieceDeck
	succession    mir4.SuccessionSlots
}

// aggregate runs the full pipeline for one listing entry: novelty
// check, two-wave fetch fan-out, merge, persist. A failed sub-resource
// fetch leaves its field zero-valued and never discards the entry,
// only a store failure does.
func (c *Crawler) aggregate(ctx context.Context, entry mir4.ListingEntry) Outcome {
	ctx, span := tracer.Start(ctx, "aggregate")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("transport_id", entry.TransportID),
		attribute.Int64("seq", entry.Seq),
		attribute.String("character_name", entry.CharacterName),
	)

	known, err := c.qry.CharacterExists(ctx, entry.TransportID)
	if err != nil {
		slog.ErrorContext(ctx, "novelty check failed",
			"transport_id", entry.TransportID, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return OutcomeFailed
	}
	if known != 0 {
		slog.DebugContext(ctx, "skipping known character",
			"transport_id", entry.TransportID,
			"character_name", entry.CharacterName)
		span.SetAttributes(attribute.Bool("skipped", true))
		return OutcomeSkipped
	}

	slog.InfoContext(ctx, "aggregating character",
		"transport_id", entry.TransportID,
		"character_name", entry.CharacterName)

	ctx, cancel := context.WithTimeout(ctx, c.opts.EntryTimeout)
	defer cancel()

	record := c.fetchAll(ctx, entry)

	err = c.persist(ctx, record)
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist character",
			"transport_id", entry.TransportID,
			"character_name", entry.CharacterName,
			"err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return OutcomeFailed
	}
	return OutcomePersisted
}

// fetchAll fans out the sub-resource fetches for one entry. The
// independent fetchers and the inventory fetch run concurrently with
// no ordering between them, the inventory-gated resolvers launch only
// once the inventory snapshot has resolved.
func (c *Crawler) fetchAll(ctx context.Context, entry mir4.ListingEntry) *characterRecord {
	record := &characterRecord{entry: entry}
	tid := entry.TransportID
	class := entry.Class

	var wg sync.WaitGroup
	fetch := func(name string, f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f()
			if err != nil {
				c.noteFailure(ctx, entry, name, err)
			}
		}()
	}

	fetch("stats", func() (err error) {
		record.stats, err = c.client.Stats(ctx, tid)
		return
	})
	fetch("skills", func() (err error) {
		record.skills, err = c.client.Skills(ctx, tid, class)
		return
	})
	fetch("training", func() (err error) {
		record.training, err = c.client.Training(ctx, tid)
		return
	})
	fetch("buildings", func() (err error) {
		record.buildings, err = c.client.Buildings(ctx, tid)
		return
	})
	fetch("assets", func() (err error) {
		record.assets, err = c.client.Assets(ctx, tid)
		return
	})
	fetch("potentials", func() (err error) {
		record.potentials, err = c.client.Potentials(ctx, tid)
		return
	})
	fetch("holy_stuff", func() (err error) {
		record.holyStuff, err = c.client.HolyStuff(ctx, tid)
		return
	})
	fetch("codex", func() (err error) {
		record.codex, err = c.client.Codex(ctx, tid)
		return
	})
	fetch("spirits", func() (err error) {
		record.spirits, err = c.client.Spirits(ctx, tid)
		return
	})
	fetch("magic_orb", func() (err error) {
		record.magicOrb, err = c.client.MagicOrb(ctx, tid)
		return
	})

	// the inventory fetch gates the resolvers that cross-reference item
	// ids through it. holding wg while adding the second wave keeps the
	// counter from draining early.
	wg.Add(1)
	go func() {
		defer wg.Done()

		inventory, err := c.client.Inventory(ctx, tid)
		if err != nil {
			c.noteFailure(ctx, entry, "inventory", err)
			slog.WarnContext(ctx, "inventory unavailable, skipping equipment resolvers",
				"transport_id", tid)
			return
		}
		c.trade.Annotate(inventory)
		record.inventory = inventory
		record.craftMaterials = mir4.CraftMaterials(inventory)
		record.tickets = mir4.Tickets(inventory)

		fetch("summary", func() (err error) {
			record.summary, err = c.client.Summary(ctx, entry.Seq, tid, class, inventory, c.trade)
			return
		})
		fetch("magic_stone", func() (err error) {
			record.magicStone, err = c.client.MagicStone(ctx, tid, class, inventory, c.trade)
			return
		})
		fetch("mystical_piece", func() (err error) {
			record.mysticalPiece, err = c.client.MysticalPiece(ctx, tid, class, inventory, c.trade)
			return
		})
		fetch("succession", func() (err error) {
			record.succession, err = c.client.Succession(ctx, tid, class, inventory, c.trade)
			return
		})
	}()

	wg.Wait()
	return record
}

func (c *Crawler) noteFailure(ctx context.Context, entry mir4.ListingEntry, resource string, err error) {
	slog.WarnContext(ctx, "sub-resource fetch failed",
		"resource", resource,
		"transport_id", entry.TransportID,
		"seq", entry.Seq,
		"character_name", entry.CharacterName,
		"err", err)
}

// persist writes the sub-documents first, capturing their assigned
// ids, then the character row referencing them. There is no rollback
// of sub-documents when the final write fails, a re-run re-derives
// and re-writes them.
func (c *Crawler) persist(ctx context.Context, record *characterRecord) error {
	ctx, span := tracer.Start(ctx, "persist")
	defer span.End()

	inventoryID, err := c.qry.CreateInventory(ctx, db.CreateInventoryParams{
		Items:          asJson(record.inventory),
		CraftMaterials: asJson(record.craftMaterials),
	})
	if err != nil {
		return err
	}
	successionID, err := c.qry.CreateSuccession(ctx, asJson(record.succession))
	if err != nil {
		return err
	}
	spiritsID, err := c.qry.CreateSpirits(ctx, db.CreateSpiritsParams{
		Equip: asJson(record.spirits.Equip),
		Inven: asJson(record.spirits.Inven),
	})
	if err != nil {
		return err
	}
	magicOrbID, err := c.qry.CreateMagicOrb(ctx, db.CreateMagicOrbParams{
		EquipItem:  asJson(record.magicOrb.EquipItem),
		ActiveDeck: record.magicOrb.ActiveDeck,
	})
	if err != nil {
		return err
	}
	magicStoneID, err := c.qry.CreateMagicStone(ctx, db.CreateMagicStoneParams{
		EquipItem:  asJson(record.magicStone.EquipItem),
		ActiveDeck: record.magicStone.ActiveDeck,
	})
	if err != nil {
		return err
	}
	mysticalPieceID, err := c.qry.CreateMysticalPiece(ctx, db.CreateMysticalPieceParams{
		EquipItem:  asJson(record.mysticalPiece.EquipItem),
		ActiveDeck: record.mysticalPiece.ActiveDeck,
	})
	if err != nil {
		return err
	}

	entry := record.entry
	return c.qry.CreateCharacter(ctx, db.CreateCharacterParams{
		Seq:             entry.Seq,
		TransportID:     entry.TransportID,
		NftID:           entry.NftID,
		SealedDt:        entry.SealedDT,
		CharacterName:   entry.CharacterName,
		Class:           entry.Class,
		Lvl:             int64(entry.Level),
		PowerScore:      int64(entry.PowerScore),
		Price:           int64(entry.Price),
		MirageScore:     int64(entry.MirageScore),
		MiraX:           int64(entry.MiraX),
		Reinforce:       int64(entry.Reinforce),
		TradeType:       record.summary.TradeType,
		WorldName:       record.summary.WorldName,
		Stats:           asJson(record.stats),
		Skills:          asJson(record.skills),
		Training:        asJson(record.training),
		Buildings:       asJson(record.buildings),
		Assets:          asJson(record.assets),
		Potentials:      asJson(record.potentials),
		HolyStuff:       asJson(record.holyStuff),
		Codex:           asJson(record.codex),
		EquipItems:      asJson(record.summary.EquipItems),
		Tickets:         asJson(record.tickets),
		InventoryID:     inventoryID,
		SuccessionID:    successionID,
		SpiritsID:       spiritsID,
		MagicOrbID:      magicOrbID,
		MagicStoneID:    magicStoneID,
		MysticalPieceID: mysticalPieceID,
	})
}

// asJson renders a merged field for its TEXT column. Every value here
// is built from decoded API payloads so marshalling cannot fail, a nil
// map or slice still renders as its JSON zero value.
func asJson(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal sub-document", "err", err)
		return "null"
	}
	return string(raw)
}
