package models

type Member struct {
	ID   int64  `json:"id" bson:"id" yaml:"id"`
	Name string `json:"name" bson:"name" yaml:"name"`
}
