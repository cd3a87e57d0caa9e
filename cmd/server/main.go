package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/tripmate/internal/config"
	"github.com/user/tripmate/internal/handler"
	"github.com/user/tripmate/internal/middleware"
	"github.com/user/tripmate/internal/repository"
	"github.com/user/tripmate/internal/router"
	"github.com/user/tripmate/internal/service"
	"github.com/user/tripmate/internal/utils"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化仓库
	repos := repository.NewRepositories(cfg)

	// 景点/酒店目录是启动硬依赖，加载失败直接退出
	places, err := repos.Catalog.LoadPlaces()
	if err != nil {
		log.Fatalf("景点目录加载失败: %v", err)
	}
	hotels, err := repos.Catalog.LoadHotels()
	if err != nil {
		log.Fatalf("酒店目录加载失败: %v", err)
	}

	// 用户表允许缺失，退化为空表继续运行
	if err := repos.User.Load(); err != nil {
		log.Printf("警告: %v", err)
	}

	// 构建推荐引擎（相似度矩阵在此一次性构建，此后只读）
	start := time.Now()
	recommender := service.NewRecommendService(places, hotels, repos.User, cfg.DefaultAlpha)
	log.Printf("推荐引擎就绪: %d 个景点, %d 家酒店, 矩阵构建耗时 %v",
		len(places), len(hotels), time.Since(start))

	// 初始化缓存
	utils.InitCache()

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// 初始化 Handler
	h := handler.NewHandler(repos, cfg, recommender)

	// 注册路由
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}
