package version

const APP_VERSION = "1.2.0"
