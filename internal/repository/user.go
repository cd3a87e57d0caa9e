package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/user/tripmate/internal/model"
)

// ErrEmailExists 邮箱已注册（大小写不敏感）
var ErrEmailExists = errors.New("邮箱已存在")

// UserRepository 用户表仓库。整表常驻内存，注册时在互斥锁内整表重写回文件
type UserRepository struct {
	path string

	mu    sync.RWMutex
	users []model.User
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// Load 加载用户表。文件缺失或损坏时退化为空表并返回警告错误，调用方记录日志后可继续运行
func (r *UserRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = nil

	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("用户表不可用，以空表启动: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(bufio.NewReader(f))
	rd.FieldsPerRecord = -1

	head, err := rd.Read()
	if err != nil {
		return fmt.Errorf("用户表表头损坏，以空表启动: %w", err)
	}
	header := make(csvHeader, len(head))
	for i, col := range head {
		header[strings.TrimSpace(col)] = i
	}

	id := header.index("User_ID")
	name := header.index("User_Name")
	email := header.index("Email_Id")
	age := header.index("Age")
	sex := header.index("Sex")
	visited := header.index("Places_Visited")
	ratings := header.index("Ratings_Given")

	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.users = nil
			return fmt.Errorf("用户表内容损坏，以空表启动: %w", err)
		}
		u := model.User{
			Name:          field(rec, name),
			Email:         field(rec, email),
			Sex:           field(rec, sex),
			PlacesVisited: field(rec, visited),
		}
		u.ID, _ = strconv.Atoi(field(rec, id))
		u.Age, _ = strconv.Atoi(field(rec, age))
		u.RatingsGiven, _ = strconv.ParseFloat(field(rec, ratings), 64)
		r.users = append(r.users, u)
	}
	return nil
}

// FindByEmail 按邮箱查找用户（大小写不敏感），未找到返回 nil
func (r *UserRepository) FindByEmail(email string) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(email)
	for i := range r.users {
		if strings.ToLower(r.users[i].Email) == lower {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// FindByID 按 ID 查找用户，未找到返回 nil
func (r *UserRepository) FindByID(id int) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// Count 用户总数
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Register 注册新用户。邮箱查重（大小写不敏感），新 ID 取现有最大值加一，
// 追加后整表重写回文件。整个读-改-写序列在锁内串行化
func (r *UserRepository) Register(u model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(u.Email)
	maxID := 0
	for i := range r.users {
		if strings.ToLower(r.users[i].Email) == lower {
			return nil, ErrEmailExists
		}
		if r.users[i].ID > maxID {
			maxID = r.users[i].ID
		}
	}

	u.ID = maxID + 1
	r.users = append(r.users, u)

	if err := r.saveLocked(); err != nil {
		// 写盘失败则回滚内存状态
		r.users = r.users[:len(r.users)-1]
		return nil, err
	}
	return &u, nil
}

// saveLocked 整表重写。调用方必须已持有写锁
func (r *UserRepository) saveLocked() error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("保存用户表: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(bufio.NewWriter(f))
	defer w.Flush()

	if err := w.Write([]string{"User_ID", "User_Name", "Email_Id", "Age", "Sex", "Places_Visited", "Ratings_Given"}); err != nil {
		return fmt.Errorf("保存用户表: %w", err)
	}
	for _, u := range r.users {
		ratings := ""
		if u.RatingsGiven != 0 {
			ratings = strconv.FormatFloat(u.RatingsGiven, 'f', -1, 64)
		}
		rec := []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Email,
			strconv.Itoa(u.Age),
			u.Sex,
			u.PlacesVisited,
			ratings,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("保存用户表: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
