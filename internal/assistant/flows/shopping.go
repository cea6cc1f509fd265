package flows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/catalog"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
)

// ShoppingFlow runs the storefront conversation: browse the product catalog
// with free-form queries, buy an item from the last shown list by position,
// and recall the most recent purchase.
type ShoppingFlow struct {
	products  []catalog.Product
	store     *repo.FileStore
	lastShown []catalog.Product
	lastOrder *model.PurchaseRecord
}

func NewShoppingFlow(products []catalog.Product, store *repo.FileStore) *ShoppingFlow {
	return &ShoppingFlow{products: products, store: store}
}

func (f *ShoppingFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.lastShown = nil
	f.lastOrder = nil
	greeting := "Hi, I'm your shopping assistant. Ask me about hoodies, tees, or mugs and I'll show you what we have."
	if name != "" {
		greeting = fmt.Sprintf("Hi %s, I'm your shopping assistant. Ask me about hoodies, tees, or mugs and I'll show you what we have.", name)
	}
	return model.Response{Text: greeting, Status: model.StatusOK}, nil
}

// Browse filters the catalog against a free-form query and remembers the
// shown list so a later Buy can reference items by position.
func (f *ShoppingFlow) Browse(ctx context.Context, query string) (model.Response, error) {
	results := catalog.FilterProducts(f.products, query)
	f.lastShown = results
	if len(results) == 0 {
		return model.Response{
			Text:   "I couldn't find anything matching that. Try a category like 'hoodie' or 'mug', a color, or a price like 'under 1000'.",
			Status: model.StatusOK,
		}, nil
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n")
	for i, p := range results {
		fmt.Fprintf(&b, "%d. %s — %d %s | Sizes: %s\n", i+1, p.Name, p.Price, p.Currency, strings.Join(p.Sizes, ", "))
	}
	b.WriteString("\nSay: 'Buy item 1 in size medium'.")
	return model.Response{Text: b.String(), Status: model.StatusOK}, nil
}

// Buy places an order for one item from the last shown list. Index is
// 1-based. An out-of-range index or a size the product doesn't come in is
// rejected without writing anything.
func (f *ShoppingFlow) Buy(ctx context.Context, sel model.Selection) (model.Response, error) {
	if sel.Index < 1 || sel.Index > len(f.lastShown) {
		return model.Response{
			Text:   "I'm not sure which item you mean. Browse first, then pick an item by its number.",
			Status: model.StatusInvalid,
		}, nil
	}
	p := f.lastShown[sel.Index-1]

	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	size := strings.ToLower(strings.TrimSpace(sel.Size))
	if size != "" && !p.HasSize(size) {
		return model.Response{
			Text:   fmt.Sprintf("%s doesn't come in '%s'. Available sizes: %s.", p.Name, size, strings.Join(p.Sizes, ", ")),
			Status: model.StatusInvalid,
		}, nil
	}

	rec := model.PurchaseRecord{
		ID:          uuid.NewString()[:8],
		Items:       []model.PurchaseItem{{ProductID: p.ID, Quantity: qty, Size: size}},
		Total:       p.Price * qty,
		Currency:    p.Currency,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		ProductName: p.Name,
	}
	if _, err := f.store.Append(rec); err != nil {
		return model.Response{
			Text:   "I couldn't place that order just now. Nothing was charged; let's try again in a moment.",
			Status: model.StatusFailed,
		}, err
	}
	f.lastOrder = &rec

	text := fmt.Sprintf("Your order for %s has been placed!", p.Name)
	if size != "" {
		text = fmt.Sprintf("Your order for %s in size %s has been placed!", p.Name, size)
	}
	return model.Response{Text: text, Status: model.StatusSaved, Ref: rec.ID}, nil
}

// LastOrder recalls the most recent purchase made in this session.
func (f *ShoppingFlow) LastOrder(ctx context.Context) (model.Response, error) {
	if f.lastOrder == nil {
		return model.Response{
			Text:   "You haven't placed any orders yet.",
			Status: model.StatusOK,
		}, nil
	}
	rec := f.lastOrder
	text := fmt.Sprintf("Your last order was %s for %d %s.", rec.ProductName, rec.Total, rec.Currency)
	if len(rec.Items) > 0 && rec.Items[0].Size != "" {
		text = fmt.Sprintf("Your last order was %s in size %s for %d %s.", rec.ProductName, rec.Items[0].Size, rec.Total, rec.Currency)
	}
	return model.Response{Text: text, Status: model.StatusOK, Ref: rec.ID}, nil
}

func (f *ShoppingFlow) Finalize(ctx context.Context) (model.Response, error) {
	return f.LastOrder(ctx)
}

func (f *ShoppingFlow) Restart(ctx context.Context) (model.Response, error) {
	f.lastShown = nil
	f.lastOrder = nil
	return model.Response{
		Text:   "Fresh start. What are you shopping for?",
		Status: model.StatusOK,
	}, nil
}

func (f *ShoppingFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	if in.Selection != nil {
		return f.Buy(ctx, *in.Selection)
	}
	if in.Text != "" {
		return f.Browse(ctx, in.Text)
	}
	return model.Response{
		Text:   "Tell me what you're looking for, or pick an item by its number.",
		Status: model.StatusUnresolved,
	}, nil
}

var _ Assistant = (*ShoppingFlow)(nil)
