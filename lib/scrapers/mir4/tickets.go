package mir4

// entry tickets that are worth reporting on a listing
var ticketNames = map[string]bool{
	"Wayfarer Travel Pass": true,
	"Secret Peak Ticket":   true,
	"Magic Square Ticket":  true,
	"Raid Ticket":          true,
	"Boss Raid Ticket":     true,
	"Hell Raid Ticket":     true,
}

// Tickets derives the dungeon ticket counts from an inventory
// snapshot, no network call involved.
func Tickets(inventory []InventoryItem) map[string]int64 {
	tickets := map[string]int64{}
	for _, item := range inventory {
		if !ticketNames[item.ItemName] {
			continue
		}
		tickets[item.ItemName] = int64(item.Stack)
	}
	return tickets
}
