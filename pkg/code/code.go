// Package code defines the message keys surfaced to UI shells through the
// transient notification channel, with their localized texts.
package code

// Key is a stable message key carried on notification payloads. UI shells
// may match on the key or display the localized message directly.
type Key string

const (
	UploadSuccess        Key = "upload_success"
	UploadFailed         Key = "upload_failed"
	ClipboardEmpty       Key = "clipboard_empty"
	ClipboardUnavailable Key = "clipboard_unavailable"
	ConfigureStoreFirst  Key = "configure_store_first"
	HistoryCleared       Key = "history_cleared"
	SettingsSaved        Key = "settings_saved"
)

var messages = map[Key]lang{
	UploadSuccess:        {en: "Upload succeeded", zh_cn: "上传成功"},
	UploadFailed:         {en: "Upload failed", zh_cn: "上传失败"},
	ClipboardEmpty:       {en: "Clipboard is empty or not an image", zh_cn: "剪贴板为空或不是图片"},
	ClipboardUnavailable: {en: "Clipboard is not available", zh_cn: "剪贴板不可用"},
	ConfigureStoreFirst:  {en: "Configure a storage profile first", zh_cn: "请先配置存储"},
	HistoryCleared:       {en: "History cleared", zh_cn: "历史记录已清空"},
	SettingsSaved:        {en: "Settings saved", zh_cn: "设置已保存"},
}

// Message returns the localized text for a key, falling back to the key
// itself for unknown keys so shells never render an empty notification.
func (k Key) Message() string {
	if l, ok := messages[k]; ok {
		return l.GetMessage()
	}
	return string(k)
}
