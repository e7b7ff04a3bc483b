package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the bot's small operational state: the active disambiguation
// menu per chat and the set of already-posted news links. Every method is
// nil-safe so the bot runs without a database, falling back to the
// accepted-risk behavior of the original (no stale-menu detection, in-memory
// news dedup only).
type Store struct {
	client *mongo.Client
	menus  *mongo.Collection
	news   *mongo.Collection
}

// ActiveMenu records which menu is current for a chat. A callback token whose
// menu ID no longer matches is stale.
type ActiveMenu struct {
	ChatID    int64     `bson:"chat_id"`
	MenuID    string    `bson:"menu_id"`
	Query     string    `bson:"query"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	if uri == "" {
		return nil, errors.New("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	db := client.Database(database)
	menus := db.Collection("active_menus")
	news := db.Collection("posted_news")
	_, _ = menus.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{bson.E{Key: "chat_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = news.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{bson.E{Key: "link", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &Store{client: client, menus: menus, news: news}, nil
}

// SetActiveMenu upserts the current menu for a chat, superseding any older one.
func (s *Store) SetActiveMenu(ctx context.Context, chatID int64, menuID, query string) error {
	if s == nil {
		return nil
	}
	_, err := s.menus.UpdateOne(ctx,
		bson.M{"chat_id": chatID},
		bson.M{"$set": bson.M{
			"chat_id":    chatID,
			"menu_id":    menuID,
			"query":      query,
			"updated_at": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// IsMenuActive reports whether menuID is still the current menu for the chat.
// With no store configured the check is skipped and every menu counts as
// active.
func (s *Store) IsMenuActive(ctx context.Context, chatID int64, menuID string) bool {
	if s == nil {
		return true
	}
	var m ActiveMenu
	err := s.menus.FindOne(ctx, bson.M{"chat_id": chatID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		// Nothing recorded for the chat (pre-store menus): accept.
		return true
	}
	if err != nil {
		return true
	}
	return m.MenuID == menuID
}

// IsNewsPosted reports whether a link was recorded by an earlier run.
func (s *Store) IsNewsPosted(ctx context.Context, link string) (bool, error) {
	if s == nil {
		return false, nil
	}
	err := s.news.FindOne(ctx, bson.M{"link": link}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkNewsPosted records a posted link. Returns false when the link was
// already recorded, so callers skip duplicates.
func (s *Store) MarkNewsPosted(ctx context.Context, link string) (bool, error) {
	if s == nil {
		return true, nil
	}
	_, err := s.news.InsertOne(ctx, bson.M{
		"link":      link,
		"posted_at": time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
