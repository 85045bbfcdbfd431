package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PagesController serves the landing page and the static shop/admin
// frontend pages.
type PagesController struct {
	frontendDir string
}

func NewPagesController(frontendDir string) *PagesController {
	return &PagesController{frontendDir: frontendDir}
}

func (p *PagesController) Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

func (p *PagesController) Shop(c *gin.Context) {
	c.File(filepath.Join(p.frontendDir, "index.html"))
}

func (p *PagesController) Admin(c *gin.Context) {
	c.File(filepath.Join(p.frontendDir, "admin.html"))
}

const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Humisha Fireworks Platform</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 20px;
        }
        .container {
            background: white;
            border-radius: 20px;
            padding: 60px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            text-align: center;
            max-width: 600px;
        }
        h1 { color: #667eea; font-size: 48px; margin-bottom: 20px; }
        p { color: #666; font-size: 18px; margin-bottom: 40px; line-height: 1.6; }
        .links { display: flex; gap: 20px; justify-content: center; flex-wrap: wrap; }
        .btn {
            padding: 15px 30px;
            border-radius: 10px;
            text-decoration: none;
            font-size: 18px;
            font-weight: bold;
            display: inline-block;
        }
        .btn-shop { background: #667eea; color: white; }
        .features { margin-top: 40px; padding-top: 40px; border-top: 2px solid #eee; }
        .feature {
            display: flex;
            align-items: center;
            justify-content: center;
            gap: 10px;
            margin: 15px 0;
            color: #555;
            font-size: 16px;
        }
        .status {
            display: inline-block;
            padding: 8px 20px;
            background: #28a745;
            color: white;
            border-radius: 20px;
            font-size: 14px;
            margin-bottom: 20px;
        }
        @media (max-width: 480px) {
            .container { padding: 20px 15px; }
            h1 { font-size: 28px; }
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🛍️ Humisha Fireworks Platform</h1>
        <div class="status">✅ Server Running</div>
        <p>Welcome to our Humisha Fireworks platform! Start shopping or manage your products.</p>
        <div class="links">
            <a href="/shop" class="btn btn-shop">🛒 Start Shopping</a>
        </div>
        <div class="features">
            <div class="feature"><span>✨</span><span>No registration required for shopping</span></div>
            <div class="feature"><span>📦</span><span>Home delivery available</span></div>
            <div class="feature"><span>💳</span><span>Easy checkout process</span></div>
            <div class="feature"><span>📞</span><span>Contact: +917000260096</span></div>
        </div>
    </div>
</body>
</html>`
