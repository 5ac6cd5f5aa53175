// Package storage archives crawled pages to MongoDB. The store is
// optional: without a URI it degrades to a no-op so the crawl itself
// never depends on a database being up.
package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Webpage is the archived form of one visited HTML page.
type Webpage struct {
	URL       string `bson:"url"`
	Title     string `bson:"title"`
	Content   string `bson:"content"`
	WordCount int    `bson:"wordCount"`
}

type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New connects to MongoDB at uri. An empty uri returns a no-op store.
func New(ctx context.Context, uri string) (*Store, error) {
	if uri == "" {
		return &Store{}, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	collection := client.Database("crawlArchive").Collection("webpages")
	return &Store{client: client, collection: collection}, nil
}

// Enabled reports whether pages are actually being archived.
func (s *Store) Enabled() bool { return s.client != nil }

// Insert archives one page. Failures are logged, never fatal: losing an
// archive row must not stop the crawl.
func (s *Store) Insert(ctx context.Context, wp Webpage) {
	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := s.collection.InsertOne(ctx, wp); err != nil {
		log.Printf("archive insert %s: %v", wp.URL, err)
	}
}

func (s *Store) Close(ctx context.Context) {
	if s.client != nil {
		s.client.Disconnect(ctx)
	}
}
