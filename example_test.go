package kdgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/blobstore"
)

func Example() {
	points := []kdgo.Point{
		{0.0, 0.0},
		{1.0, 1.0},
		{2.0, 2.0},
		{3.0, 3.0},
	}

	db, err := kdgo.Build(points)
	if err != nil {
		panic(err)
	}

	best, err := db.NearestNeighbor(kdgo.Point{2.1, 2.1})
	if err != nil {
		panic(err)
	}

	fmt.Println(best.Index)
	// Output: 2
}

func Example_persistence() {
	ctx := context.Background()

	points := []kdgo.Point{
		{0.0, 0.0},
		{1.0, 1.0},
		{2.0, 2.0},
	}

	db, err := kdgo.Build(points)
	if err != nil {
		panic(err)
	}

	store := blobstore.NewMemoryStore()
	if err := db.Save(ctx, store, "points.kdtree.gz"); err != nil {
		panic(err)
	}

	loaded, err := kdgo.Load(ctx, store, "points.kdtree.gz", kdgo.WithDataset(points))
	if err != nil {
		panic(err)
	}

	best, err := loaded.VerifiedNearestNeighbor(kdgo.Point{1.2, 0.9})
	if err != nil {
		panic(err)
	}

	fmt.Println(best.Index)
	// Output: 1
}
