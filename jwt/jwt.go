package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"os"
)

var (
	privateKeyPath = "jwt/private_key.pem"
	publicKeyPath  = "jwt/public_key.pem"
)

var ErrTokenRevoked = errors.New("token已登出或過期")

const tokenKeyPrefix = "login_token:"

// 登入Token在Redis中的Key
func TokenKey(token string) string {
	return tokenKeyPrefix + token
}

// 讀取私鑰
func loadPrivateKey() (*rsa.PrivateKey, error) {
	keyBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	return key, nil
}

// 讀取公鑰
func loadPublicKey() (*rsa.PublicKey, error) {
	keyBytes, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	return key, nil
}

// 生成JWT Token
func GenerateToken(userID uint, expTime int64) (string, error) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		return "", err
	}

	token := jwt.New(jwt.SigningMethodRS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = userID
	claims["exp"] = expTime

	tokenString, err := token.SignedString(privateKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// 驗證JWT Token並回傳UserID
func VerifyToken(ctx context.Context, tokenString *string, rdb *redis.Client) (uint, error) {
	publicKey, err := loadPublicKey()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(*tokenString, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	//從Redis檢查Token是否已登出
	exists, err := rdb.Exists(ctx, TokenKey(*tokenString)).Result()
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		return 0, ErrTokenRevoked
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := uint(claims["userID"].(float64))

	return userID, nil
}
