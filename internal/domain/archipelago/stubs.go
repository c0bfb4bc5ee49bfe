package archipelago

const fixesHeaderContent = `#pragma once

// Fix for nlohmann::json namespace versioning
// The library uses versioned namespaces but we need the simple namespace

// First, include the json library
#include <nlohmann/json.hpp>

// Create namespace alias to handle versioned namespace
namespace nlohmann {
    #if !defined(NLOHMANN_JSON_NAMESPACE_NO_VERSION) || !NLOHMANN_JSON_NAMESPACE_NO_VERSION
        // The library uses versioned namespace, create an alias
        using json = NLOHMANN_JSON_NAMESPACE::json;
    #endif
}

// Ensure we're using the correct namespace
using json = nlohmann::json;
`

const wswrapContent = `#pragma once

// WebSocket wrapper stub for Archipelago
// This file provides a minimal interface for WebSocket functionality

#include <string>
#include <functional>
#include <memory>

namespace wswrap {

class WebSocketClient {
public:
    WebSocketClient() = default;
    virtual ~WebSocketClient() = default;
    
    // Connection callbacks
    std::function<void()> on_open;
    std::function<void(const std::string&)> on_message;
    std::function<void(int, const std::string&)> on_close;
    std::function<void(const std::string&)> on_error;
    
    // Connection methods
    virtual bool connect(const std::string& url) = 0;
    virtual void disconnect() = 0;
    virtual bool send(const std::string& message) = 0;
    virtual bool is_connected() const = 0;
};

// Factory function to create platform-specific WebSocket client
std::unique_ptr<WebSocketClient> create_websocket_client();

} // namespace wswrap
`

const apclientContent = `#pragma once
#include "../archipelago_fixes.h"
#include <string>
#include <vector>
#include <functional>
#include <tuple>

class APClient {
public:
    struct NetworkItem {
        int64_t item;
        int64_t location;
        int player;
        int flags;
    };
    
    APClient(const std::string& uuid, const std::string& game, const std::string& uri) {}
    ~APClient() {}
    
    void poll() {}
    void ConnectSlot(const std::string& name, const std::string& password, int items_handling, 
                     const std::vector<std::string>& tags, const std::tuple<int,int,int>& version) {}
    void LocationChecks(const std::vector<int64_t>& locations) {}
    void Say(const std::string& text) {}
    
    // Callbacks
    void set_socket_connected_handler(std::function<void()> f) {}
    void set_socket_disconnected_handler(std::function<void()> f) {}
    void set_slot_connected_handler(std::function<void(const json&)> f) {}
    void set_slot_refused_handler(std::function<void(const std::vector<std::string>&)> f) {}
    void set_items_received_handler(std::function<void(const std::vector<NetworkItem>&)> f) {}
    void set_print_json_handler(std::function<void(const json&)> f) {}
};
`

const apuuidContent = `#pragma once
#include <string>
#include <chrono>

inline std::string ap_get_uuid(const std::string& game_name) {
    // Simple UUID generation for now
    return game_name + "_" + std::to_string(std::chrono::system_clock::now().time_since_epoch().count());
}
`

const networkImplContent = `#include "ap_network.h"

namespace Archipelago {

// Stub implementations for missing methods
void APNetworkClient::SendLocationScouts(const std::vector<int64_t>& locations) {}
void APNetworkClient::SendBounce(const json& data) {}
void APNetworkClient::SendStatusUpdate(int status) {}
void APNetworkClient::GetData(const std::vector<std::string>& keys) {}
void APNetworkClient::SetData(const std::string& key, const json& value) {}
void APNetworkClient::StopNetworkThread() {}

} // namespace Archipelago
`

const managerImplContent = `#include "ap_manager.h"

namespace Archipelago {

// Stub implementations for missing methods
void Manager::ScoutLocation(int64_t location_id) {}
void Manager::ScoutLocations(const std::vector<int64_t>& location_ids) {}
void Manager::SendDeathLink(const std::string& cause) {}
void Manager::GetData(const std::vector<std::string>& keys) {}
void Manager::SetData(const std::string& key, const json& value) {}
void Manager::SetGoalComplete() {}
void Manager::SetGameComplete() {}
void Manager::SetDeathLinkCallback(DeathLinkCallback callback) {}
std::vector<Message> Manager::GetAllMessages() { return {}; }
const NetworkPlayer* Manager::GetPlayer(int slot) const { return nullptr; }
const NetworkPlayer* Manager::GetLocalPlayer() const { return nullptr; }
void Manager::UpdateConfig(const Config& config) { config_ = config; }
const Config& Manager::GetConfig() const { return config_; }

} // namespace Archipelago
`
