package pantry

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
)

var (
	// ErrNotFound — запись или группа отсутствует в локальном состоянии.
	ErrNotFound = errors.New("not found")
	// ErrSystemGroup — попытка удалить системную группу Unassigned.
	ErrSystemGroup = errors.New("cannot delete the Unassigned group")
	// ErrValidation — ввод не прошёл клиентскую проверку.
	ErrValidation = errors.New("validation failed")
)

// API — серверные операции, нужные контроллеру. Реализуется api.Client.
type API interface {
	GetPantry(ctx context.Context, userID int64) ([]model.FoodItem, error)
	AddFoodItem(ctx context.Context, userID int64, item model.FoodItem) (model.FoodItem, error)
	ChangeFoodItem(ctx context.Context, userID int64, edit model.FoodEdit) (model.FoodItem, error)
	DeleteFoodItem(ctx context.Context, userID, itemID int64) error
	GetFoodGroups(ctx context.Context, userID int64) ([]model.FoodGroup, error)
	AddFoodGroup(ctx context.Context, userID int64, name string) (model.FoodGroup, error)
	DeleteFoodGroup(ctx context.Context, userID, groupID int64) ([]model.FoodGroup, error)
}

// Controller выполняет мутации по optimistic-протоколу: снимок → локальное
// применение → серверный вызов → слияние ответа либо полный откат снимка.
// Мутации сериализованы, поэтому откат всегда возвращает согласованное
// состояние.
type Controller struct {
	api    API
	state  *State
	temp   *TempIDs
	log    *zap.SugaredLogger
	userID int64

	mu chan struct{} // семафор на одну мутацию
}

// NewController создаёт контроллер для пользователя userID.
func NewController(apiClient API, state *State, temp *TempIDs, log *zap.SugaredLogger, userID int64) *Controller {
	c := &Controller{
		api:    apiClient,
		state:  state,
		temp:   temp,
		log:    log,
		userID: userID,
		mu:     make(chan struct{}, 1),
	}
	c.mu <- struct{}{}
	return c
}

// State возвращает наблюдаемое состояние контроллера.
func (c *Controller) State() *State { return c.state }

func (c *Controller) lock(ctx context.Context) error {
	select {
	case <-c.mu:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) unlock() { c.mu <- struct{}{} }

// Load загружает обе коллекции с сервера и заменяет локальное состояние.
func (c *Controller) Load(ctx context.Context) error {
	var (
		items  []model.FoodItem
		groups []model.FoodGroup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.api.GetPantry(gctx, c.userID)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = c.api.GetFoodGroups(gctx, c.userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	c.state.Set(items, groups)
	return nil
}

// AddItemInput — ввод для создания строки пантри.
type AddItemInput struct {
	FoodName       string
	FoodGroupID    int64
	Quantity       int64
	Units          *string
	ExpiryDate     *model.Date
	BestBeforeDate *model.Date
}

// AddFoodItem создаёт строку оптимистично под временным id и заменяет её
// серверной версией после подтверждения.
func (c *Controller) AddFoodItem(ctx context.Context, in AddItemInput) (model.FoodItem, error) {
	name := NormaliseFoodName(in.FoodName)
	if name == "" {
		return model.FoodItem{}, fmt.Errorf("%w: food name is required", ErrValidation)
	}
	if in.Quantity < 0 {
		return model.FoodItem{}, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}

	if err := c.lock(ctx); err != nil {
		return model.FoodItem{}, err
	}
	defer c.unlock()

	snap := c.state.Snapshot()

	today := model.Today()
	optimistic := model.FoodItem{
		ID:             c.temp.Next(),
		FoodGroupID:    in.FoodGroupID,
		ExpiryDate:     in.ExpiryDate,
		BestBeforeDate: in.BestBeforeDate,
		AddedDate:      today,
		Quantity:       in.Quantity,
		Units:          in.Units,
		UserID:         c.userID,
		FoodName:       name,
	}
	c.state.SetItems(append(snap.Items, optimistic))

	created, err := c.api.AddFoodItem(ctx, c.userID, optimistic)
	if err != nil {
		c.log.Warnw("add item rejected, rolling back", "food_name", name, "error", err)
		c.state.Restore(snap)
		return model.FoodItem{}, err
	}

	c.replaceItem(optimistic.ID, created)
	return created, nil
}

// ChangeFoodItem применяет диф оптимистично и сливает серверную строку
// после подтверждения. Пустой диф — no-op.
func (c *Controller) ChangeFoodItem(ctx context.Context, edit model.FoodEdit) error {
	if edit.IsEmpty() {
		return nil
	}
	if edit.FoodName.Set {
		if !edit.FoodName.Valid {
			return fmt.Errorf("%w: food name cannot be null", ErrValidation)
		}
		edit.FoodName = opt.Of(NormaliseFoodName(edit.FoodName.Value))
		if edit.FoodName.Value == "" {
			return fmt.Errorf("%w: food name is required", ErrValidation)
		}
	}

	if err := c.lock(ctx); err != nil {
		return err
	}
	defer c.unlock()

	snap := c.state.Snapshot()
	idx := indexOfItem(snap.Items, edit.ID)
	if idx < 0 {
		return ErrNotFound
	}

	items := copyItems(snap.Items)
	items[idx] = edit.Apply(items[idx])
	c.state.SetItems(items)

	updated, err := c.api.ChangeFoodItem(ctx, c.userID, edit)
	if err != nil {
		c.log.Warnw("edit rejected, rolling back", "id", edit.ID, "error", err)
		c.state.Restore(snap)
		return err
	}

	c.replaceItem(edit.ID, updated)
	return nil
}

// ChangeQuantity сдвигает количество на delta с насыщением в нуле.
// Если итог совпадает с текущим количеством, сервер не вызывается.
func (c *Controller) ChangeQuantity(ctx context.Context, itemID, delta int64) error {
	idx := indexOfItem(c.state.Items(), itemID)
	if idx < 0 {
		return ErrNotFound
	}
	current := c.state.Items()[idx].Quantity
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next == current {
		return nil
	}
	return c.ChangeFoodItem(ctx, model.FoodEdit{ID: itemID, Quantity: opt.Of(next)})
}

// MoveItemToGroup переносит строку в указанную группу.
func (c *Controller) MoveItemToGroup(ctx context.Context, itemID, groupID int64) error {
	if indexOfGroup(c.state.Groups(), groupID) < 0 {
		return fmt.Errorf("%w: group %d", ErrNotFound, groupID)
	}
	return c.ChangeFoodItem(ctx, model.FoodEdit{ID: itemID, FoodGroupID: opt.Of(groupID)})
}

// SaveEditedItem вычисляет диф между текущей и отредактированной версией
// строки и отправляет только изменившиеся поля.
func (c *Controller) SaveEditedItem(ctx context.Context, edited model.FoodItem) error {
	idx := indexOfItem(c.state.Items(), edited.ID)
	if idx < 0 {
		return ErrNotFound
	}
	edit := DiffFoodItem(c.state.Items()[idx], edited)
	return c.ChangeFoodItem(ctx, edit)
}

// DeleteFoodItem убирает строку оптимистично и откатывает при отказе сервера.
func (c *Controller) DeleteFoodItem(ctx context.Context, itemID int64) error {
	if err := c.lock(ctx); err != nil {
		return err
	}
	defer c.unlock()

	snap := c.state.Snapshot()
	idx := indexOfItem(snap.Items, itemID)
	if idx < 0 {
		return ErrNotFound
	}

	items := copyItems(snap.Items)
	c.state.SetItems(append(items[:idx], items[idx+1:]...))

	if err := c.api.DeleteFoodItem(ctx, c.userID, itemID); err != nil {
		c.log.Warnw("delete rejected, rolling back", "id", itemID, "error", err)
		c.state.Restore(snap)
		return err
	}
	return nil
}

// AddFoodGroup создаёт группу оптимистично под временным id в конце порядка.
func (c *Controller) AddFoodGroup(ctx context.Context, name string) (model.FoodGroup, error) {
	name = NormaliseFoodName(name)
	if name == "" {
		return model.FoodGroup{}, fmt.Errorf("%w: group name is required", ErrValidation)
	}

	if err := c.lock(ctx); err != nil {
		return model.FoodGroup{}, err
	}
	defer c.unlock()

	snap := c.state.Snapshot()

	var maxOrder int64
	for _, g := range snap.Groups {
		if !g.IsSystem && g.DisplayOrder > maxOrder {
			maxOrder = g.DisplayOrder
		}
	}
	optimistic := model.FoodGroup{
		ID:           c.temp.Next(),
		UserID:       c.userID,
		Name:         name,
		DisplayOrder: maxOrder + 1,
	}
	c.state.SetGroups(append(snap.Groups, optimistic))

	created, err := c.api.AddFoodGroup(ctx, c.userID, name)
	if err != nil {
		c.log.Warnw("add group rejected, rolling back", "name", name, "error", err)
		c.state.Restore(snap)
		return model.FoodGroup{}, err
	}

	groups := c.state.Groups()
	if idx := indexOfGroup(groups, optimistic.ID); idx >= 0 {
		groups[idx] = created
		c.state.SetGroups(groups)
	}
	return created, nil
}

// DeleteFoodGroup удаляет несистемную группу: её строки оптимистично
// переезжают в Unassigned, порядок оставшихся групп уплотняется. Серверная
// часть — переназначение строк параллельными PATCH-ами и DELETE группы;
// итоговый список групп с сервера заменяет локальный целиком. Любой отказ
// откатывает обе коллекции.
func (c *Controller) DeleteFoodGroup(ctx context.Context, groupID int64) error {
	if err := c.lock(ctx); err != nil {
		return err
	}
	defer c.unlock()

	snap := c.state.Snapshot()

	idx := indexOfGroup(snap.Groups, groupID)
	if idx < 0 {
		return fmt.Errorf("%w: group %d", ErrNotFound, groupID)
	}
	doomed := snap.Groups[idx]
	if doomed.IsSystem {
		return ErrSystemGroup
	}

	var unassigned *model.FoodGroup
	for i := range snap.Groups {
		if snap.Groups[i].IsSystem {
			unassigned = &snap.Groups[i]
			break
		}
	}
	if unassigned == nil {
		return fmt.Errorf("%w: no %s group", ErrNotFound, model.UnassignedGroupName)
	}

	// локальное применение
	items := copyItems(snap.Items)
	var orphaned []int64
	for i := range items {
		if items[i].FoodGroupID == groupID {
			items[i].FoodGroupID = unassigned.ID
			orphaned = append(orphaned, items[i].ID)
		}
	}
	groups := make([]model.FoodGroup, 0, len(snap.Groups)-1)
	for _, g := range snap.Groups {
		if g.ID != groupID {
			groups = append(groups, g)
		}
	}
	c.state.Set(items, ReindexAfterDelete(groups, doomed.DisplayOrder))

	// серверная часть: переназначение строк, затем удаление группы
	g, gctx := errgroup.WithContext(ctx)
	for _, itemID := range orphaned {
		id := itemID
		g.Go(func() error {
			_, err := c.api.ChangeFoodItem(gctx, c.userID,
				model.FoodEdit{ID: id, FoodGroupID: opt.Of(unassigned.ID)})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Warnw("group delete: reassign failed, rolling back", "group_id", groupID, "error", err)
		c.state.Restore(snap)
		return err
	}

	refreshed, err := c.api.DeleteFoodGroup(ctx, c.userID, groupID)
	if err != nil {
		c.log.Warnw("group delete rejected, rolling back", "group_id", groupID, "error", err)
		c.state.Restore(snap)
		return err
	}
	c.state.SetGroups(refreshed)
	return nil
}

// replaceItem заменяет строку id серверной версией с сохранением позиции.
func (c *Controller) replaceItem(id int64, with model.FoodItem) {
	items := c.state.Items()
	if idx := indexOfItem(items, id); idx >= 0 {
		items[idx] = with
		c.state.SetItems(items)
	}
}

func indexOfItem(items []model.FoodItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfGroup(groups []model.FoodGroup, id int64) int {
	for i := range groups {
		if groups[i].ID == id {
			return i
		}
	}
	return -1
}
