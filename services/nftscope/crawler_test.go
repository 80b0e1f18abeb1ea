package nftscope

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mir4scope-backend/lib/scrapers/mir4"
	"mir4scope-backend/lib/testutil"
	"mir4scope-backend/services/nftscope/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const listsPage1 = `{"data":{"firstID":9042,"totalCount":"2","more":"0","lists":[
	{"seq":9042,"transportID":42,"nftID":"0xabc","sealedDT":1700000000,
	 "characterName":"Ruyue","class":3,"lv":"80","powerScore":"105000",
	 "price":"999","MirageScore":"12","MiraX":"3","Reinforce":"7"},
	{"seq":9007,"transportID":7,"nftID":"0xdef","sealedDT":1690000000,
	 "characterName":"Known","class":1,"lv":"60","powerScore":"70000",
	 "price":"500","MirageScore":"2","MiraX":"1","Reinforce":"4"}
]}}`

var characterFixtures = map[string]string{
	"/character/stats": `{"data":{"lists":[
		{"statName":"HP","statValue":"201525","iconPath":"/img/hp.png"},
		{"statName":"PHYS ATK","statValue":"15201","iconPath":"/img/atk.png"}
	]}}`,
	"/character/skills": `{"data":[
		{"skillName":"Dragon Flame","skillLevel":"10"}
	]}`,
	"/character/training": `{"data":{
		"0":{"forceIdx":"1","forceLevel":"12","forceName":"Muscle Strength Manual"},
		"1":{"forceIdx":"2","forceLevel":"9","forceName":"Nine Yin Manual"},
		"consitutionLevel":"7","consitutionName":"Vigor",
		"collectName":"Violet Mist Art","collectLevel":"3"
	}}`,
	"/character/building": `{"data":{
		"1":{"buildingName":"Conquest Hall","buildingLevel":"4"}
	}}`,
	"/character/assets": `{"data":{
		"copper":"1002345","energy":120,"darksteel":"40000","speedups":"12",
		"dragonjade":"0","acientcoins":"5","dragonsteel":9
	}}`,
	"/character/potential": `{"data":{
		"total":"1200","totalMax":"3000","hunting":"500","huntingMax":"1000",
		"pvp":"400","pvpMax":"1000","secondary":"300","secondaryMax":"1000"
	}}`,
	"/character/holystuff": `{"data":{
		"0":{"HolyStuffName":"Holy Dragon Statue","Grade":"3"},
		"1":{"HolyStuffName":"Holy Dragon Orb","Grade":null}
	}}`,
	"/character/codex": `{"data":{
		"1":{"codexName":"Character","totalCount":"30","completed":"12","inprogress":"1"},
		"2":{"codexName":"Conquest","totalCount":"20","completed":"4","inprogress":"0"}
	}}`,
	"/character/spirit": `{"data":{
		"equip":{"1":{"1":{"petName":"Blue Dragon"}}},
		"inven":[{"transcend":"3","grade":"4","petName":"Blue Dragon","iconPath":"/img/bd.png"}]
	}}`,
	"/character/magicorb": `{"data":{"equipItem":{
		"1":{"1":{"itemIdx":"600001","itemLv":"5","itemExp":"100","grade":"4",
		          "tier":"1","itemName":"Orb of Rage","itemPath":"/img/orb.png"}}
	},"activeDeck":"1"}}`,
	"/character/inven": `{"data":[
		{"itemUID":"uid-1","itemID":"110500","enhance":"9","stack":"1",
		 "tranceStep":"0","RefineStep":"3","grade":"5","mainType":"1",
		 "subType":"1","tabCategory":"0","tier":"4",
		 "itemName":"Dragon Claw Blade","itemPath":"/img/w.png"},
		{"itemUID":"uid-2","itemID":"500123","enhance":"0","stack":"240",
		 "tranceStep":"0","RefineStep":"0","grade":"2","mainType":"5",
		 "subType":"3","tabCategory":"2","tier":"1",
		 "itemName":"Moonshadow Stone","itemPath":"/img/mat.png"},
		{"itemUID":"uid-3","itemID":"700010","enhance":"0","stack":"11",
		 "tranceStep":"0","RefineStep":"0","grade":"1","mainType":"6",
		 "subType":"1","tabCategory":"3","tier":"1",
		 "itemName":"Raid Ticket","itemPath":"/img/ticket.png"}
	]}`,
	"/character/summary": `{"data":{
		"character":{"worldName":"ASIA014"},
		"tradeType":"2",
		"equipItem":{"1":{"itemIdx":"110500","enhance":"9","refineStep":"3",
		                  "grade":"5","tier":"4","itemType":"Weapon",
		                  "itemName":"Dragon Claw Blade","itemPath":"/img/w.png"}}
	}}`,
	"/character/magicstone": `{"data":{"equipItem":{
		"1":{"1":{"itemIdx":"610001","tranceStep":"2","RefineStep":"1","grade":"3",
		          "tier":"1","itemName":"Abyss Stone","itemPath":"/img/ms.png"}}
	},"activeDeck":"1"}}`,
	"/character/mysticalpiece": `{"data":{"equipItem":[],"activeDeck":"0"}}`,
	"/character/succession": `{"data":{"equipItem":{
		"1":{"itemIdx":"120001","tranceStep":"0","RefineStep":"0","enhance":"0",
		     "grade":"4","tier":"1","itemName":"Phoenix Robe","itemPath":"/img/sr.png"}
	}}}`,
	"/character/itemdetail": `{"data":{
		"powerScore":"5200",
		"options":[{"optionName":"PHYS ATK","optionValue":250.125,"optionFormat":"+{value}"}],
		"addOptions":[]
	}}`,
}

func fakeMarketplace(t *testing.T, overrides map[string]http.HandlerFunc) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := overrides[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		if r.URL.Path == "/lists" {
			w.Write([]byte(listsPage1))
			return
		}
		fixture, ok := characterFixtures[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(fixture))
	}))
	t.Cleanup(server.Close)
	return server
}

var testTrade = mir4.TradeTable{"110500": 1, "610001": 0}

func seedKnownCharacter(t *testing.T, qry *db.Queries, transportID int64) {
	err := qry.CreateCharacter(context.Background(), db.CreateCharacterParams{
		Seq:           9007,
		TransportID:   transportID,
		NftID:         "0xdef",
		CharacterName: "Known",
	})
	require.NoError(t, err)
}

func TestCrawlerRun(t *testing.T) {
	server := fakeMarketplace(t, nil)
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope",
		DbSchema: db.Schema,
	})
	defer cleanup()

	qry := db.New(res.DB)
	seedKnownCharacter(t, qry, 7)

	crawler := NewCrawler(
		mir4.NewClient(mir4.ClientOptions{BaseUrl: server.URL}),
		res.DB, testTrade,
		Options{FirstPage: 1, LastPage: 1},
	)
	report, err := crawler.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Pages)
	require.Equal(t, 2, report.Entries)
	require.Equal(t, 1, report.Persisted)
	require.Equal(t, 1, report.Skipped)
	require.Equal(t, 0, report.Failed)

	character, err := qry.GetCharacter(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Ruyue", character.CharacterName)
	require.Equal(t, "ASIA014", character.WorldName)
	require.EqualValues(t, 2, character.TradeType)
	require.EqualValues(t, 80, character.Lvl)
	require.EqualValues(t, 999, character.Price)

	var stats map[string]string
	require.NoError(t, json.Unmarshal([]byte(character.Stats), &stats))
	expected := map[string]string{"HP": "201525", "PHYS ATK": "15201"}
	require.Empty(t, cmp.Diff(expected, stats))

	var tickets map[string]int64
	require.NoError(t, json.Unmarshal([]byte(character.Tickets), &tickets))
	require.Empty(t, cmp.Diff(map[string]int64{"Raid Ticket": 11}, tickets))

	var codex mir4.CodexSummary
	require.NoError(t, json.Unmarshal([]byte(character.Codex), &codex))
	require.EqualValues(t, 16, codex.Completed)
	require.EqualValues(t, 1, codex.InProgress)

	// the worn weapon resolves its detail through the inventory: power
	// score and rounded option values from itemdetail, tradability from
	// the trade table
	var equip mir4.EquipSlots
	require.NoError(t, json.Unmarshal([]byte(character.EquipItems), &equip))
	weapon := equip["1"]
	require.EqualValues(t, 5200, weapon.PowerScore)
	require.Len(t, weapon.Options, 1)
	require.Equal(t, 250.13, weapon.Options[0].Value)
	require.True(t, weapon.IsTradable)

	// sub-documents are written before the character row and referenced
	// by id
	require.NotZero(t, character.InventoryID)
	require.NotZero(t, character.SuccessionID)
	require.NotZero(t, character.SpiritsID)
	require.NotZero(t, character.MagicOrbID)
	require.NotZero(t, character.MagicStoneID)
	require.NotZero(t, character.MysticalPieceID)

	inventories, err := qry.CountInventories(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, inventories)

	var row struct {
		CraftMaterials string
	}
	err = res.DB.QueryRow(
		"SELECT craft_materials FROM inventory WHERE id = ?",
		character.InventoryID,
	).Scan(&row.CraftMaterials)
	require.NoError(t, err)
	var materials map[string]int64
	require.NoError(t, json.Unmarshal([]byte(row.CraftMaterials), &materials))
	require.Empty(t, cmp.Diff(map[string]int64{"Moonshadow Stone": 240}, materials))
}

func TestCrawlerRerunSkipsEverything(t *testing.T) {
	server := fakeMarketplace(t, nil)
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope",
		DbSchema: db.Schema,
	})
	defer cleanup()

	crawler := NewCrawler(
		mir4.NewClient(mir4.ClientOptions{BaseUrl: server.URL}),
		res.DB, testTrade,
		Options{FirstPage: 1, LastPage: 1},
	)
	_, err := crawler.Run(context.Background())
	require.NoError(t, err)

	report, err := crawler.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Skipped)
	require.Equal(t, 0, report.Persisted)

	total, err := db.New(res.DB).CountCharacters(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

func TestCrawlerAbsorbsFetchFailures(t *testing.T) {
	server := fakeMarketplace(t, map[string]http.HandlerFunc{
		"/character/stats": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope",
		DbSchema: db.Schema,
	})
	defer cleanup()

	qry := db.New(res.DB)
	seedKnownCharacter(t, qry, 7)

	crawler := NewCrawler(
		mir4.NewClient(mir4.ClientOptions{BaseUrl: server.URL}),
		res.DB, testTrade,
		Options{FirstPage: 1, LastPage: 1},
	)
	report, err := crawler.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Persisted)
	require.Equal(t, 0, report.Failed)

	// the failed stat sheet leaves its field empty, the rest of the
	// record is intact
	character, err := qry.GetCharacter(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "null", character.Stats)
	require.Equal(t, "ASIA014", character.WorldName)
}

func TestCrawlerInventoryFailureSkipsResolvers(t *testing.T) {
	requested := make(chan string, 64)
	server := fakeMarketplace(t, map[string]http.HandlerFunc{
		"/character/inven": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"/character/summary": func(w http.ResponseWriter, r *http.Request) {
			requested <- r.URL.Path
			w.WriteHeader(http.StatusNotFound)
		},
	})
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope",
		DbSchema: db.Schema,
	})
	defer cleanup()

	qry := db.New(res.DB)
	seedKnownCharacter(t, qry, 7)

	crawler := NewCrawler(
		mir4.NewClient(mir4.ClientOptions{BaseUrl: server.URL}),
		res.DB, testTrade,
		Options{FirstPage: 1, LastPage: 1},
	)
	report, err := crawler.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Persisted)

	// no inventory snapshot means the inventory-gated endpoints are
	// never called
	close(requested)
	require.Empty(t, requested)

	character, err := qry.GetCharacter(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "", character.WorldName)
	require.Equal(t, "null", character.Tickets)
}

func TestCrawlerPrefixStop(t *testing.T) {
	listRequests := 0
	server := fakeMarketplace(t, map[string]http.HandlerFunc{
		"/lists": func(w http.ResponseWriter, r *http.Request) {
			listRequests++
			w.Write([]byte(listsPage1))
		},
	})
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nftscope",
		DbSchema: db.Schema,
	})
	defer cleanup()

	qry := db.New(res.DB)
	seedKnownCharacter(t, qry, 7)
	seedKnownCharacter(t, qry, 42)

	crawler := NewCrawler(
		mir4.NewClient(mir4.ClientOptions{BaseUrl: server.URL}),
		res.DB, testTrade,
		Options{FirstPage: 1, LastPage: 5, Concurrency: 1, PrefixStop: true},
	)
	report, err := crawler.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, listRequests)
	require.Equal(t, 0, report.Persisted)
	require.GreaterOrEqual(t, report.Skipped, 1)
}
