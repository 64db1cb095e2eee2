package ordering

import (
	"sync"

	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
)

// StockInventory tracks per-item stock and active reservations in memory.
// Items without a configured stock level are treated as always available.
type StockInventory struct {
	mu       sync.Mutex
	stock    map[string]int
	reserved map[string]int
	log      *logger.Logger
}

// NewStockInventory creates an empty inventory.
func NewStockInventory(log *logger.Logger) *StockInventory {
	return &StockInventory{
		stock:    make(map[string]int),
		reserved: make(map[string]int),
		log:      log,
	}
}

// SetStock fixes the stock level for an item name.
func (s *StockInventory) SetStock(name string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[name] = quantity
}

// CheckAvailability reports whether at least one unreserved unit exists.
func (s *StockInventory) CheckAvailability(item menu.Component) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, tracked := s.stock[item.Name()]
	if !tracked {
		return true
	}
	return stock-s.reserved[item.Name()] > 0
}

// Reserve marks one unit of the item as held.
func (s *StockInventory) Reserve(item menu.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reserved[item.Name()]++
	s.log.Debug("item_reserved", "Reserved item", "", map[string]interface{}{
		"item":     item.Name(),
		"reserved": s.reserved[item.Name()],
	})
}

// Release returns one held unit of the item. Releasing an item with no
// active reservation is a no-op.
func (s *StockInventory) Release(item menu.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reserved[item.Name()] == 0 {
		return
	}
	s.reserved[item.Name()]--
	s.log.Debug("item_released", "Released reservation", "", map[string]interface{}{
		"item":     item.Name(),
		"reserved": s.reserved[item.Name()],
	})
}

// Reserved reports the active reservation count for an item name.
func (s *StockInventory) Reserved(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserved[name]
}
