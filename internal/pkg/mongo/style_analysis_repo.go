package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StyleAnalysisRepo interface {
	GetByOutfit(ctx context.Context, userID uint64, outfitSeq uint64) (*StyleAnalysis, error)
	Save(ctx context.Context, analysis *StyleAnalysis) error
}

type styleAnalysisRepoImpl struct {
	col *mongo.Collection
}

func NewStyleAnalysisRepo(db *mongo.Database) StyleAnalysisRepo {
	repo := &styleAnalysisRepoImpl{
		col: db.Collection("style_analysis"),
	}

	// (user_id, outfit_seq) 唯一索引，并发生成时第二个写入者失败
	_, _ = repo.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "outfit_seq", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return repo
}

// GetByOutfit 精确查询某套穿搭的分析，不存在时返回 nil
func (s *styleAnalysisRepoImpl) GetByOutfit(ctx context.Context, userID uint64, outfitSeq uint64) (*StyleAnalysis, error) {
	var analysis StyleAnalysis
	filter := bson.M{
		"user_id":    userID,
		"outfit_seq": outfitSeq,
	}
	err := s.col.FindOne(ctx, filter).Decode(&analysis)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

// Save 将分析文档存入 MongoDB
func (s *styleAnalysisRepoImpl) Save(ctx context.Context, analysis *StyleAnalysis) error {
	_, err := s.col.InsertOne(ctx, analysis)
	return err
}
