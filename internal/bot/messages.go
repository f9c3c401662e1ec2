package bot

import (
	"errors"
	"fmt"

	"github.com/vidfetch/vidfetch-bot/internal/delivery"
	"github.com/vidfetch/vidfetch-bot/internal/model"
)

const welcomeText = "🎬 *Welcome to Video Downloader Bot!*\n\n" +
	"I can download videos from:\n" +
	"• YouTube (including Shorts)\n" +
	"• TikTok\n" +
	"• Twitter/X\n\n" +
	"*How to use:*\n" +
	"1️⃣ Send me a video link\n" +
	"2️⃣ Choose quality/format\n" +
	"3️⃣ Get your file!\n\n" +
	"📝 *Commands:*\n" +
	"/start - Show this message\n" +
	"/help - Get help\n" +
	"/about - About this bot\n\n" +
	"Just send me a link to get started! 🚀"

const helpText = "❓ *Help & FAQ*\n\n" +
	"*Supported Links:*\n" +
	"• YouTube videos & shorts\n" +
	"• TikTok videos\n" +
	"• Twitter/X videos\n\n" +
	"*File Size Limit:*\n" +
	"Maximum 50MB (Telegram limit)\n\n" +
	"*Troubleshooting:*\n" +
	"• Make sure the link is public\n" +
	"• Try different quality if download fails\n" +
	"• Some videos may be region-locked\n\n" +
	"*Tips:*\n" +
	"• Lower quality = smaller file size\n" +
	"• Audio-only is fastest to download\n" +
	"• Be patient with long videos"

const aboutText = "ℹ️ *About This Bot*\n\n" +
	"This bot helps you download videos from various platforms " +
	"directly to Telegram.\n\n" +
	"*Features:*\n" +
	"✅ Multiple quality options\n" +
	"✅ Audio extraction\n" +
	"✅ Fast processing\n" +
	"✅ Clean interface\n\n" +
	"*Privacy:*\n" +
	"• No data is stored\n" +
	"• Files are deleted after sending\n" +
	"• No logs are kept"

const invalidLinkText = "❌ *Invalid or unsupported link!*\n\n" +
	"Please send a valid YouTube, TikTok or Twitter/X link."

const sessionExpiredText = "❌ *Session expired!*\n" +
	"Please send the link again."

const cancelledText = "❌ Download cancelled."

const twitterBlockedText = "❌ *Twitter/X Download Failed!*\n\n" +
	"Twitter/X has restricted access for downloaders.\n\n" +
	"*Alternatives:*\n" +
	"• Try a different Twitter video\n" +
	"• Use YouTube or TikTok instead\n" +
	"• Some Twitter videos may work, others won't\n\n" +
	"This is due to Twitter's anti-bot measures."

const downloadFailedText = "❌ *Download failed!*\n\n" +
	"Possible reasons:\n" +
	"• Video is private or deleted\n" +
	"• Network error\n" +
	"• Video is region-locked\n\n" +
	"Please try again or use different quality."

const uploadFailedText = "❌ *Upload failed!*\n" +
	"Please try again later."

const unknownCommandText = "❓ Unknown command. Use /help for available commands."

const errorText = "⚠️ An error occurred. Please try again later."

func detectedText(platform model.Platform) string {
	return fmt.Sprintf("📹 *%s video detected!*\n\nChoose download option:", platform.DisplayName())
}

func downloadingText(format model.FormatType, quality model.Quality) string {
	return fmt.Sprintf("⬇️ *Downloading...*\n"+
		"Format: %s\n"+
		"Quality: %s\n\n"+
		"Please wait, this may take a moment...",
		format.DisplayName(), quality.DisplayName())
}

func tooLargeText(size, limit int64) string {
	return fmt.Sprintf("❌ *File too large!*\n\n"+
		"File size: %s\n"+
		"Telegram limit: %s\n\n"+
		"Try downloading with lower quality.",
		delivery.FormatSize(size), delivery.FormatSize(limit))
}

func captionText(result *model.DownloadResult) string {
	return fmt.Sprintf("✅ *%s*\n👤 %s\n📊 %s",
		result.Meta.Title, result.Meta.Uploader, delivery.FormatSize(result.Size))
}

// failureText maps a pipeline failure onto the user-facing reply.
func failureText(err error) string {
	var de *model.DownloadError
	if errors.As(err, &de) {
		switch de.Kind {
		case model.FailPlatformBlocked:
			return twitterBlockedText
		case model.FailTooLarge:
			return tooLargeText(de.Size, de.Limit)
		case model.FailSessionExpired:
			return sessionExpiredText
		}
	}
	return downloadFailedText
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
