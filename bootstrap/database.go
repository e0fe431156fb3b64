package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stylesong/stylesong/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongodbURI := fmt.Sprintf("mongodb://%s:%s", env.DBHost, env.DBPort)
	if env.DBUser != "" && env.DBPass != "" {
		mongodbURI = fmt.Sprintf("mongodb://%s:%s@%s:%s", env.DBUser, env.DBPass, env.DBHost, env.DBPort)
	}

	client, err := mongo.NewClient(mongodbURI)
	if err != nil {
		log.Fatalf("创建MongoDB客户端失败: %v", err)
	}

	if err := client.Connect(ctx); err != nil {
		log.Fatalf("连接MongoDB失败: %v", err)
	}

	if err := client.Ping(ctx); err != nil {
		log.Fatalf("MongoDB无响应: %v", err)
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("断开MongoDB连接失败: %v", err)
		return
	}
	log.Println("MongoDB连接已关闭")
}
